package admin

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ApproveRequest struct {
	Approved bool `json:"approved"`
}

type DestroyRequest struct {
	ConfirmCompanyName string `json:"confirmCompanyName" binding:"required"`
}
