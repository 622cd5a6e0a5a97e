package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletList(t *testing.T) {
	assert.Equal(t, DashPlaceholder, BulletList(nil))
	assert.Equal(t, "- Flour\n- Sugar\n", BulletList([]string{"Flour", " Sugar "}))
	assert.Equal(t, "- 1\\*2 \\_cups\\_\n", BulletList([]string{"1*2 _cups_"}))
}

func TestNumberedList(t *testing.T) {
	assert.Equal(t, DashPlaceholder, NumberedList([]string{}))
	assert.Equal(t, "1. Boil water.\n2. Add \\#1 pasta.\n",
		NumberedList([]string{"Boil water.", "Add #1 pasta."}))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, DashPlaceholder, orDash("  "))
	assert.Equal(t, "Italian", orDash("Italian"))
}
