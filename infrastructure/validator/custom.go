package validator

import (
	"encoding/base64"
	"strings"

	"github.com/go-playground/validator/v10"
	"veriface.io/entities"
)

func validateBase64Image(fl validator.FieldLevel) bool {
	data := fl.Field().String()
	if idx := strings.Index(data, ","); idx != -1 {
		data = data[idx+1:]
	}
	if data == "" {
		return false
	}
	// Decode only a prefix; full frames can be megabytes.
	sample := data
	if len(sample) > 256 {
		sample = sample[:256]
	}
	sample = sample[:len(sample)-len(sample)%4]
	_, err := base64.StdEncoding.DecodeString(sample)
	return err == nil
}

func validateChallengeType(fl validator.FieldLevel) bool {
	return entities.ChallengeType(fl.Field().String()).Valid()
}
