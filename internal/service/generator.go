package service

import (
	"math/rand"

	"github.com/avc-dev/redirector/internal/model"
)

const (
	CodeLength   = 8
	AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator генерирует случайные короткие коды
type CodeGenerator struct {
	random *rand.Rand
}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		random: rand.New(rand.NewSource(rand.Int63())),
	}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() model.Code {
	result := make([]byte, CodeLength)

	for i := range result {
		result[i] = AllowedChars[g.random.Intn(len(AllowedChars))]
	}

	return model.Code(result)
}
