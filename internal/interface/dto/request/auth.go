package request

// LoginRequest はログインリクエスト
// WebクライアントはフォームPOST、スクリプトクライアントはJSONで送信します
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required"`
}
