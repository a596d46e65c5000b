package shared

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

var jsonAPI = sonic.Config{
	UseNumber:            false,
	EscapeHTML:           false,
	SortMapKeys:          false,
	CompactMarshaler:     true,
	NoQuoteTextMarshaler: true,
	NoNullSliceOrMap:     true,
}.Froze()

var (
	successResponse       = mustMarshal(Response{Code: 200, Message: "Success"})
	notFoundResponse      = mustMarshal(Response{Code: 404, Message: "Not Found"})
	badRequestResponse    = mustMarshal(Response{Code: 400, Message: "Bad Request"})
	internalErrorResponse = mustMarshal(Response{Code: 500, Message: "Internal Server Error"})
)

func mustMarshal(v interface{}) []byte {
	b, _ := jsonAPI.Marshal(v)
	return b
}

// MarshalJSON is the encoder handed to fiber so every body goes through sonic.
func MarshalJSON(v interface{}) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

// UnmarshalJSON is the decoder handed to fiber.
func UnmarshalJSON(data []byte, v interface{}) error {
	return jsonAPI.Unmarshal(data, v)
}

func ResponseJSON(c *fiber.Ctx, httpCode int, message string, data interface{}) error {
	if data == nil {
		var cached []byte
		switch {
		case httpCode == fiber.StatusOK && message == "Success":
			cached = successResponse
		case httpCode == fiber.StatusNotFound && message == "Not Found":
			cached = notFoundResponse
		case httpCode == fiber.StatusBadRequest && message == "Bad Request":
			cached = badRequestResponse
		case httpCode == fiber.StatusInternalServerError && message == "Internal Server Error":
			cached = internalErrorResponse
		}
		if cached != nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.Status(httpCode).Send(cached)
		}
	}

	return c.Status(httpCode).JSON(Response{
		Code:    httpCode,
		Message: message,
		Data:    data,
	})
}

// ResponseData writes v as the bare response body.
func ResponseData(c *fiber.Ctx, httpCode int, v interface{}) error {
	return c.Status(httpCode).JSON(v)
}

func ResponseOK(c *fiber.Ctx, data interface{}) error {
	return ResponseData(c, fiber.StatusOK, data)
}

func ResponseMessage(c *fiber.Ctx, message string) error {
	return ResponseJSON(c, fiber.StatusOK, message, nil)
}

func ResponseInternalError(c *fiber.Ctx) error {
	return ResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
}
