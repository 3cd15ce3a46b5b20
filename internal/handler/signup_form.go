package handler

import "regexp"

// 用户名与邮箱的合法格式沿用站点最初的注册规则。
var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	emailPattern    = regexp.MustCompile(`^[^\s]+@[^\s]+\.[^\s]+$`)
)

// signupForm 承载注册表单的原始输入。
type signupForm struct {
	Username string
	Password string
	Verify   string
	Email    string
}

// validate 集中校验注册输入，返回按字段组织的错误信息。
// 返回空 map 表示通过；具体注册动作由调用方接续执行。
func (f signupForm) validate() map[string]string {
	fieldErrors := make(map[string]string)

	if !usernamePattern.MatchString(f.Username) {
		fieldErrors["username_error"] = "please enter a valid username"
	}

	if f.Password == "" {
		fieldErrors["password_error"] = "please enter a password"
	} else if f.Password != f.Verify {
		fieldErrors["verify_error"] = "passwords did not match"
	}

	if f.Email != "" && !emailPattern.MatchString(f.Email) {
		fieldErrors["email_error"] = "please enter a valid email"
	}

	return fieldErrors
}
