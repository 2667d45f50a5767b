package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{name: "english question", text: "What is the price?", want: English},
		{name: "arabic question", text: "ما هو السعر؟", want: Arabic},
		{name: "empty string", text: "", want: English},
		{name: "digits and punctuation only", text: "1234 !?", want: English},
		{name: "tie favors english", text: "hi لا", want: English},
		{name: "arabic majority with latin currency", text: "السعر هو 100 USD فقط", want: Arabic},
		{name: "latin majority with arabic word", text: "please translate كلمة for me", want: English},
		{name: "uppercase latin", text: "HELLO", want: English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestLanguageString(t *testing.T) {
	assert.Equal(t, "english", English.String())
	assert.Equal(t, "arabic", Arabic.String())
}
