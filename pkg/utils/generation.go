package utils

import (
	"github.com/google/uuid"
)

var (
	GenerateRequestIDFunc = GenerateRequestID
)

func GenerateRequestID() string {
	return uuid.NewString()
}
