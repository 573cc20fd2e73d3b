package handler

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"gastropos/internal/apierror"
	"gastropos/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report fields by their JSON name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Malformed JSON is INVALID_JSON; tag failures are reported under code with
// a fields map. An empty body binds as the zero value. Returns false after
// writing the response.
func bindAndValidate(c *gin.Context, req interface{}, code string) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, apierror.BadRequest(apierror.CodeInvalidJSON))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		writeError(c, apierror.Validation(code, fields))
		return false
	}
	return true
}

// bindQuery binds query-string filters.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		writeError(c, apierror.BadRequest(apierror.CodeInvalidJSON).With("detail", "query"))
		return false
	}
	return true
}

// respondError renders anticipated failures with their own status and code.
// Anything else is logged and rendered as a 500 with the operation's
// fallback code; raw errors never reach the body.
func respondError(c *gin.Context, err error, fallbackCode string) {
	if apiErr, ok := apierror.As(err); ok {
		writeError(c, apiErr)
		return
	}
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Err(err).
		Msg("request failed")
	writeError(c, apierror.Internal(fallbackCode))
}

func writeError(c *gin.Context, err *apierror.Error) {
	c.AbortWithStatusJSON(err.Status, err.Body())
}

// respondOK writes {ok:true, ...body}.
func respondOK(c *gin.Context, status int, body gin.H) {
	out := gin.H{"ok": true}
	for k, v := range body {
		out[k] = v
	}
	c.JSON(status, out)
}

// uuidParam parses a path parameter; on failure it writes code as a 400
// (or 404 for not-found codes) and returns false.
func uuidParam(c *gin.Context, name, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		status := http.StatusBadRequest
		if strings.HasSuffix(code, "_NOT_FOUND") {
			status = http.StatusNotFound
		}
		writeError(c, apierror.New(status, code))
		return uuid.Nil, false
	}
	return id, true
}

// currentUser is the authenticated user's id. JWTAuth guarantees a valid id.
func currentUser(c *gin.Context) uuid.UUID {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return uuid.Nil
	}
	return claims.UserUUID()
}
