package request

type SendCodeRequest struct {
	Phone string `json:"phone" binding:"required,mobile"`
}

type LoginRequest struct {
	Phone string `json:"phone" binding:"required,mobile"`
	Code  string `json:"code" binding:"required,len=6"`
}
