package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type signup struct {
	Username string `json:"username" binding:"required"`
	Nickname string `json:"nick" binding:"max=3"`
	Complete *bool  `json:"complete" binding:"required"`
}

func TestToDetails_UsesJSONNames(t *testing.T) {
	Init()
	err := binding.Validator.ValidateStruct(&signup{Nickname: "toolong"})

	got := ToDetails(err)
	assert.Equal(t, map[string]string{
		"username": "is required",
		"nick":     "failed max=3",
		"complete": "is required",
	}, got)
}

func TestToDetails_PayloadErrors(t *testing.T) {
	var v signup
	syntaxErr := json.Unmarshal([]byte("{"), &v)
	typeErr := json.Unmarshal([]byte(`{"username": 1}`), &v)

	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(syntaxErr))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(typeErr))
	assert.Equal(t, map[string]string{"payload": "is required"}, ToDetails(io.EOF))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(fmt.Errorf("other")))
	assert.Nil(t, ToDetails(nil))
}
