package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/GKleim/wiki/internal/db"
	"github.com/GKleim/wiki/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	userCookieName = "user_id"
	userContextKey = "__current_user"
)

// setLoginCookie 签发 "uid|hmac" 会话令牌并写入 cookie。
// 直接写响应头以保留令牌中的竖线分隔符（gin 的 SetCookie 会做 URL 转义）。
func (a *API) setLoginCookie(c *gin.Context, user *db.User) {
	token := a.signer.Sign(strconv.FormatUint(uint64(user.ID), 10))
	c.Writer.Header().Add("Set-Cookie", fmt.Sprintf("%s=%s; Path=/", userCookieName, token))
}

// clearLoginCookie 将会话 cookie 置空完成登出。
func clearLoginCookie(c *gin.Context) {
	c.Writer.Header().Add("Set-Cookie", fmt.Sprintf("%s=; Path=/", userCookieName))
}

// currentUser 校验会话 cookie 并加载对应用户。
// 令牌缺失、畸形或被篡改都按未登录处理，不向调用方报错。
func (a *API) currentUser(c *gin.Context) *db.User {
	if cached, exists := c.Get(userContextKey); exists {
		if user, ok := cached.(*db.User); ok {
			return user
		}
		return nil
	}

	var user *db.User
	defer func() { c.Set(userContextKey, user) }()

	token, err := c.Cookie(userCookieName)
	if err != nil || token == "" {
		return nil
	}

	identity, ok := a.signer.Verify(token)
	if !ok {
		return nil
	}

	uid, err := strconv.ParseUint(identity, 10, 32)
	if err != nil {
		return nil
	}

	user, _ = a.users.ByID(uint(uid))
	return user
}

// AuthRequired 要求已登录，否则重定向到登录页。
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.currentUser(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// loginName 供模板显示当前登录用户名。
func (a *API) loginName(c *gin.Context) string {
	if user := a.currentUser(c); user != nil {
		return user.Username
	}
	return ""
}

// ShowSignup 渲染注册页面
func (a *API) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"title": "Sign Up"})
}

// Signup 处理注册表单：校验输入、创建账号并自动登录。
func (a *API) Signup(c *gin.Context) {
	form := signupForm{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
		Verify:   c.PostForm("verify"),
		Email:    c.PostForm("email"),
	}

	params := gin.H{
		"title":    "Sign Up",
		"username": form.Username,
		"email":    form.Email,
	}

	fieldErrors := form.validate()
	if len(fieldErrors) > 0 {
		for key, message := range fieldErrors {
			params[key] = message
		}
		c.HTML(http.StatusOK, "signup.html", params)
		return
	}

	user, err := a.users.Register(form.Username, form.Password, form.Email)
	if err != nil {
		// 重复注册按字段错误处理，其余错误不泄露细节
		message := "registration failed, please try again"
		if errors.Is(err, service.ErrUserExists) {
			message = "user is already registered"
		}
		params["username_error"] = message
		c.HTML(http.StatusOK, "signup.html", params)
		return
	}

	a.setLoginCookie(c, user)
	c.Redirect(http.StatusFound, "/welcome")
}

// ShowLogin 渲染登录页面
func (a *API) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "Login"})
}

// Login 处理用户登录请求。
// 未知用户与密码错误一律返回泛化的 "invalid login"。
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := a.users.Login(username, password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"title":       "Login",
			"username":    username,
			"login_error": "invalid login",
		})
		return
	}

	a.setLoginCookie(c, user)
	c.Redirect(http.StatusFound, "/welcome")
}

// Logout 处理用户登出
func (a *API) Logout(c *gin.Context) {
	clearLoginCookie(c)
	c.Redirect(http.StatusFound, "/signup")
}

// Welcome 渲染欢迎页；未登录时重定向到注册页。
func (a *API) Welcome(c *gin.Context) {
	user := a.currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	c.HTML(http.StatusOK, "welcome.html", gin.H{
		"title":    "Welcome",
		"username": user.Username,
	})
}
