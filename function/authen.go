package function

import (
	"encoding/base64"
	"polls_webapp/dao"
	"polls_webapp/models"
	"strings"

	"github.com/gin-gonic/gin"
)

var FetchUsername string
var FetchPassword string

func BasicAuth() gin.HandlerFunc {

	return func(c *gin.Context) {
		auth := strings.SplitN(c.Request.Header.Get("Authorization"), " ", 2)

		if len(auth) != 2 || auth[0] != "Basic" {
			RespondWithError(401, "Unauthorized", c)
			return
		}
		payload, _ := base64.StdEncoding.DecodeString(auth[1])
		pair := strings.SplitN(string(payload), ":", 2)

		if len(pair) != 2 || !AuthenticateUser(pair[0], pair[1]) {
			RespondWithError(401, "Unauthorized", c)
			return
		}

		c.Next()
	}
}

func AuthenticateUser(username, password string) bool {
	var user models.User
	FetchUsername = username
	FetchPassword = password
	err := dao.DB.Where("email_address=?", username).First(&user).Error
	if err != nil {
		return false
	}
	return ComparePasswords(user.Password, GetPwd(password))
}

func RespondWithError(code int, message string, c *gin.Context) {
	resp := map[string]string{"error": message}

	c.JSON(code, resp)
	c.Abort()
}
