package payload

// ListResp 是分页接口的统一响应外壳。
// 分页请求参数（page_index/page_size）由各 handler 直接声明在自己的
// query 结构体里：Gin 的表单校验不支持组合嵌入，无法共享一个定义。
type ListResp[T any] struct {
	Rows  []T   `json:"rows"`
	Count int64 `json:"count"`
}
