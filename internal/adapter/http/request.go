package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"jeju-ads/internal/core/domain"
	"jeju-ads/internal/core/port"
)

// maxJSONBody bounds request bodies other than image uploads.
const maxJSONBody = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).Valid()
	})
	return v
}

type createAdRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,max=2000"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url"`
	LinkURL     string    `json:"linkUrl" validate:"required,url"`
	Category    string    `json:"category" validate:"required,category"`
	Location    string    `json:"location" validate:"max=200"`
	Tags        []string  `json:"tags" validate:"max=20,dive,max=50"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
	Budget      int64     `json:"budget" validate:"gte=0"`
}

func (r createAdRequest) input() port.CreateAdInput {
	return port.CreateAdInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		LinkURL:     r.LinkURL,
		Category:    domain.Category(r.Category),
		Location:    r.Location,
		Tags:        r.Tags,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Budget:      r.Budget,
	}
}

type updateAdRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	LinkURL     *string `json:"linkUrl" validate:"omitempty,url"`
	Budget      *int64  `json:"budget" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"isActive"`
}

func (r updateAdRequest) input() port.UpdateAdInput {
	return port.UpdateAdInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		LinkURL:     r.LinkURL,
		Budget:      r.Budget,
		IsActive:    r.IsActive,
	}
}

// updateBudgetRequest is checked by the domain rules, which know which
// actions need an amount.
type updateBudgetRequest struct {
	Action string `json:"action" validate:"required"`
	Budget *int64 `json:"budget"`
}

// billClickRequest leaves non-positive costs to the use case, which reports
// them as invalid input. The upper bound is domain.MaxCostPerClick.
type billClickRequest struct {
	CostPerClick *int64 `json:"costPerClick" validate:"omitempty,lte=1000000000"`
}

type eventRequest struct {
	AdID string `json:"adId" validate:"required"`
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports whether the handler may continue. An empty
// body is accepted when allowEmpty is set.
func decode(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !(allowEmpty && errors.Is(err, io.EOF)) {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return false
		}
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = describe(fe)
		}
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "request validation failed", details)
		return false
	}
	return true
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "url":
		return "invalid URL"
	case "max":
		return "too long (max " + fe.Param() + ")"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "gtfield":
		return "must be after " + fe.Param()
	case "category":
		return "unknown category"
	default:
		return "invalid value"
	}
}

// clientIP prefers the proxy headers, then the socket address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
