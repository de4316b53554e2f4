package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/inputfix/internal/model"
)

func TestSpliceAttributes(t *testing.T) {
	idName := []m.Attribute{{Key: "id", Value: "x"}, {Key: "name", Value: "x"}}

	tests := []struct {
		name string
		text string
		add  []m.Attribute
		want string
	}{
		{
			name: "after marker whitespace",
			text: `<input type="text">`,
			add:  idName,
			want: `<input id="x" name="x" type="text">`,
		},
		{
			name: "bare marker",
			text: `<input>`,
			add:  idName,
			want: `<input id="x" name="x">`,
		},
		{
			name: "self closing bare marker",
			text: `<input/>`,
			add:  idName,
			want: `<input id="x" name="x"/>`,
		},
		{
			name: "multi-line keeps layout",
			text: "<input\n  type=\"text\"\n/>",
			add:  idName,
			want: "<input\n  id=\"x\" name=\"x\" type=\"text\"\n/>",
		},
		{
			name: "after quoted id",
			text: `<input id="email" type="email">`,
			add:  []m.Attribute{{Key: "name", Value: "email"}, {Key: "autocomplete", Value: "email"}},
			want: `<input id="email" name="email" autocomplete="email" type="email">`,
		},
		{
			name: "present attributes dropped",
			text: `<input name="q" type="search">`,
			add:  idName,
			want: `<input id="x" name="q" type="search">`,
		},
		{
			name: "nothing left to add",
			text: `<input id="a" name="a">`,
			add:  idName,
			want: `<input id="a" name="a">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpliceAttributes(tt.text, DetectAttributes(tt.text), tt.add))
		})
	}
}
