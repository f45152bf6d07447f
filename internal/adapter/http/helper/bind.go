package helper

import "github.com/gin-gonic/gin"

// BindJSON decodes the request body into a T. Field rules are checked by
// the services, not here.
func BindJSON[T any](c *gin.Context) (T, error) {
	var params T

	if err := c.ShouldBindJSON(&params); err != nil {
		return params, err
	}

	return params, nil
}
