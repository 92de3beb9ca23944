package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice_smith"))
	assert.NoError(t, ValidateUsername("ab"))
	assert.NoError(t, ValidateUsername("user-42"))

	assert.Error(t, ValidateUsername("a"))
	assert.Error(t, ValidateUsername(strings.Repeat("x", MaxUsernameLen+1)))
	assert.Error(t, ValidateUsername("has space"))
	assert.Error(t, ValidateUsername("dotted.name"))
	assert.Error(t, ValidateUsername("_leading"))
	assert.Error(t, ValidateUsername("trailing-"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.NoError(t, ValidateEmail("a.b+c@sub.domain.org"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail(strings.Repeat("x", MaxEmailLen)+"@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("p", MaxPasswordLen+1)))
}

func TestValidateSignup(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		errs := ValidateSignup(SignupInput{
			FirstName: "Alice",
			Username:  "alice_smith",
			Email:     "alice@example.com",
			Password:  "Password123!",
		})
		assert.Empty(t, errs)
	})

	t.Run("password is optional", func(t *testing.T) {
		errs := ValidateSignup(SignupInput{
			FirstName: "Alice",
			Username:  "alice_smith",
			Email:     "alice@example.com",
		})
		assert.Empty(t, errs)
	})

	t.Run("collects all field errors", func(t *testing.T) {
		errs := ValidateSignup(SignupInput{
			Username: "x",
			Email:    "bad",
			Password: "short",
		})

		fields := make(map[string]string, len(errs))
		for _, e := range errs {
			fields[e.Field] = e.Message
		}
		assert.Equal(t, "First Name is required", fields["firstName"])
		assert.Contains(t, fields, "userName")
		assert.Equal(t, "Invalid email format", fields["email"])
		assert.Contains(t, fields, "password")
	})

	t.Run("profile extras", func(t *testing.T) {
		errs := ValidateSignup(SignupInput{
			FirstName: "Alice",
			Username:  "alice_smith",
			Email:     "alice@example.com",
			Age:       -3,
			Bio:       strings.Repeat("b", MaxBioLen+1),
			Interests: make([]string, 11),
		})

		fields := make(map[string]bool, len(errs))
		for _, e := range errs {
			fields[e.Field] = true
		}
		assert.True(t, fields["age"])
		assert.True(t, fields["bio"])
		assert.True(t, fields["interests"])
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Run("empty payload passes", func(t *testing.T) {
		assert.Empty(t, ValidateUpdate(UpdateInput{}))
	})

	t.Run("only provided fields are checked", func(t *testing.T) {
		errs := ValidateUpdate(UpdateInput{Location: "Porto"})
		assert.Empty(t, errs)

		errs = ValidateUpdate(UpdateInput{Username: "x"})
		require.Len(t, errs, 1)
		assert.Equal(t, "userName", errs[0].Field)
	})

	t.Run("negative age", func(t *testing.T) {
		age := -1
		errs := ValidateUpdate(UpdateInput{Age: &age})
		require.Len(t, errs, 1)
		assert.Equal(t, "age", errs[0].Field)
	})
}

func TestCheckAllowedFields(t *testing.T) {
	allowed := map[string]struct{}{"firstName": {}, "bio": {}}

	assert.Empty(t, CheckAllowedFields(map[string]any{"bio": "hi"}, allowed))

	errs := CheckAllowedFields(map[string]any{"bio": "hi", "email": "x"}, allowed)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "email is not allowed", errs[0].Message)
}
