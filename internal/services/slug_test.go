package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "My Shop", want: `^my-shop-[a-z0-9]{8}$`},
		{name: "punctuation collapsed", in: "Café & Bar!!", want: `^caf-bar-[a-z0-9]{8}$`},
		{name: "leading and trailing junk", in: "  --Hello--  ", want: `^hello-[a-z0-9]{8}$`},
		{name: "all stripped", in: "!!!", want: `^[a-z0-9]{8}$`},
		{name: "digits kept", in: "App 2000", want: `^app-2000-[a-z0-9]{8}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Regexp(t, tt.want, generateSlug(tt.in))
		})
	}
}

func TestGenerateSlug_Unique(t *testing.T) {
	a := generateSlug("Same Name")
	b := generateSlug("Same Name")
	assert.NotEqual(t, a, b)
}

func TestPackageNameFor(t *testing.T) {
	assert.Equal(t, "com.clickngoai.my_shop_ab12cd34", packageNameFor("my-shop-ab12cd34"))
}
