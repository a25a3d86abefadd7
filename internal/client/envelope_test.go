package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtracker/medtracker-go/internal/model"
	"github.com/medtracker/medtracker-go/pkg/logger"
)

func TestListPayloadNestedKey(t *testing.T) {
	raw := json.RawMessage(`{"medications":[{"id":"m1","name":"Lisinopril"}]}`)

	meds, err := listPayload[model.Medication](logger.Nop(), raw, "/api/medications", "medications")
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "m1", meds[0].ID)
}

func TestListPayloadBareArray(t *testing.T) {
	raw := json.RawMessage(`[{"id":"m1"},{"id":"m2"}]`)

	meds, err := listPayload[model.Medication](logger.Nop(), raw, "/api/medications", "medications")
	require.NoError(t, err)
	assert.Len(t, meds, 2)
}

func TestListPayloadMissingKeyDefaultsEmpty(t *testing.T) {
	for _, raw := range []string{`{}`, `{"medications":null}`, `{"other":[1]}`} {
		meds, err := listPayload[model.Medication](logger.Nop(), json.RawMessage(raw), "/api/medications", "medications")
		require.NoError(t, err, raw)
		require.NotNil(t, meds, raw)
		assert.Empty(t, meds, raw)
	}
}

func TestObjectPayloadMissingKeyDefaultsZero(t *testing.T) {
	raw := json.RawMessage(`{"status":"ok"}`)

	med, err := objectPayload[model.Medication](logger.Nop(), raw, "/api/medications/%s", "medication")
	require.NoError(t, err)
	assert.Empty(t, med.ID)
}

func TestObjectPayloadNestedKey(t *testing.T) {
	raw := json.RawMessage(`{"medication":{"id":"m1","dosage":"10mg"}}`)

	med, err := objectPayload[model.Medication](logger.Nop(), raw, "/api/medications/%s", "medication")
	require.NoError(t, err)
	assert.Equal(t, "10mg", med.Dosage)
}

func TestObjectOrBarePrefersKey(t *testing.T) {
	raw := json.RawMessage(`{"report":{"id":"r1"},"id":"ignored"}`)

	report, err := objectOrBare[model.Report](logger.Nop(), raw, "/api/upload", "report")
	require.NoError(t, err)
	assert.Equal(t, "r1", report.ID)
}

func TestObjectOrBareFallsBackToWholeBody(t *testing.T) {
	raw := json.RawMessage(`{"token":"t1","user":{"id":"u1"}}`)

	resp, err := objectOrBare[model.AuthResponse](logger.Nop(), raw, "/api/auth/login", "data")
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestObjectOrBareUndecodableBodyDefaultsZero(t *testing.T) {
	raw := json.RawMessage(`"just a string"`)

	report, err := objectOrBare[model.Report](logger.Nop(), raw, "/api/upload", "report")
	require.NoError(t, err)
	assert.Empty(t, report.ID)
}
