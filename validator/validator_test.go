package validator

import (
	"arka/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldTags(t *testing.T, err error) map[string]string {
	t.Helper()
	verrs, ok := err.(ValidationErrors)
	require.True(t, ok, "expected ValidationErrors, got %T", err)

	tags := make(map[string]string)
	for _, e := range verrs {
		tags[e.Field] = e.Tag
	}
	return tags
}

func TestValidate_RegisterFamilyRequest(t *testing.T) {
	v := New()

	t.Run("Valid request passes", func(t *testing.T) {
		err := v.Validate(&models.RegisterFamilyRequest{
			FamilyName: "Martin",
			OwnerName:  "Claire Martin",
			Email:      "claire@example.com",
			Password:   "s3cret-pass",
		})
		assert.NoError(t, err)
	})

	t.Run("Errors use JSON field names", func(t *testing.T) {
		err := v.Validate(&models.RegisterFamilyRequest{
			FamilyName: "Martin",
			OwnerName:  "Claire",
			Email:      "not-an-email",
			Password:   "short",
		})
		require.Error(t, err)

		tags := fieldTags(t, err)
		assert.Equal(t, "email", tags["email"])
		assert.Equal(t, "min", tags["password"])
	})
}

func TestValidate_EntityName(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"Plain ASCII", "Documents", true},
		{"Accented letters", "Électricité", true},
		{"Allowed punctuation", "Taxes (2026) - Q1_final.v2", true},
		{"Ampersand", "Claire & Sam", true},
		{"Angle brackets rejected", "<script>", false},
		{"Slash rejected", "a/b", false},
		{"Quote rejected", `say "hi"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&models.CreateSpaceRequest{Name: tt.value})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_DomainTags(t *testing.T) {
	v := New()

	t.Run("Unknown role is rejected", func(t *testing.T) {
		err := v.Validate(&models.AddMemberRequest{
			Name: "Sam", Email: "sam@example.com", Password: "p4ssword1", Role: "admin",
		})
		require.Error(t, err)
		assert.Equal(t, "memberrole", fieldTags(t, err)["role"])
	})

	t.Run("Unknown permission level is rejected", func(t *testing.T) {
		err := v.Validate(&models.GrantPermissionRequest{
			BeneficiaryIDs: []string{"7c9e6679-7425-40de-944b-e07fc1f90ae7"},
			TargetType:     "space",
			TargetID:       "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			Level:          "superuser",
		})
		require.Error(t, err)
		assert.Equal(t, "permlevel", fieldTags(t, err)["level"])
	})

	t.Run("Non-uuid beneficiary inside the list is rejected", func(t *testing.T) {
		err := v.Validate(&models.GrantPermissionRequest{
			BeneficiaryIDs: []string{"not-a-uuid"},
			TargetType:     "space",
			TargetID:       "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			Level:          "view",
		})
		assert.Error(t, err)
	})

	t.Run("Unknown recurrence is rejected", func(t *testing.T) {
		err := v.Validate(&models.CreateAlertRequest{
			Title:         "Dentist",
			Recurrence:    "fortnightly",
			NextTriggerAt: time.Now().Add(time.Hour),
		})
		require.Error(t, err)
		assert.Equal(t, "recurrence", fieldTags(t, err)["recurrence"])
	})

	t.Run("Unknown target type is rejected", func(t *testing.T) {
		err := v.Validate(&models.CheckAccessRequest{
			MemberID:   "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			TargetType: "document",
			TargetID:   "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			Level:      "view",
		})
		require.Error(t, err)
		assert.Equal(t, "targettype", fieldTags(t, err)["target_type"])
	})
}
