package domain

type CtxKey string

const (
	KeyUserID   CtxKey = "UserID"
	KeyUsername CtxKey = "Username"
	KeyIsStaff  CtxKey = "IsStaff"
)
