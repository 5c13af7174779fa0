package internal

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggingTo(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	var buf bytes.Buffer
	InitLoggingTo(&buf)
	log.Print("catalogue built")

	assert.Regexp(t, regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{6} catalogue built\n$`), buf.String())
}
