package controllers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validationErrors flattens validator output into a field -> reason map for
// the error envelope.
func validationErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = "failed validation: " + fe.Tag()
		}
	} else {
		out["body"] = err.Error()
	}
	return out
}

// paramID parses the numeric :id route parameter.
func paramID(c *fiber.Ctx, name string) (int, error) {
	return strconv.Atoi(c.Params(name))
}
