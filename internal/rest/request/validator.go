package request

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("commentstatus", func(fl validator.FieldLevel) bool {
			return domain.CommentStatus(fl.Field().Int()).Valid()
		})
	}
}
