package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAccountName() {
	tests := []struct {
		desc       string
		name       string
		expIsValid bool
	}{
		{
			desc:       "valid name",
			name:       "otc.cloak",
			expIsValid: true,
		},
		{
			desc:       "valid name with digits",
			name:       "seller12345",
			expIsValid: true,
		},
		{
			desc:       "empty",
			name:       "",
			expIsValid: false,
		},
		{
			desc:       "too long",
			name:       "abcdefghijklm",
			expIsValid: false,
		},
		{
			desc:       "uppercase rejected",
			name:       "Carol",
			expIsValid: false,
		},
		{
			desc:       "digits outside 1-5 rejected",
			name:       "seller9",
			expIsValid: false,
		},
		{
			desc:       "leading dot rejected",
			name:       ".cloak",
			expIsValid: false,
		},
		{
			desc:       "trailing dot rejected",
			name:       "cloak.",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAccountName(t.name), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
