package payload

import (
	"fmt"
	"regexp"

	"github.com/jellydator/validation"
)

var (
	addressRegex   = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{40}$`)
	uintRegex      = regexp.MustCompile(`^[1-9][0-9]*$`)
	hexDataRegex   = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
	signatureRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)
	pinCodeRegex   = regexp.MustCompile(`^[0-9]{4,8}$`)
)

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
