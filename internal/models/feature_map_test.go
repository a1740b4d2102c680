package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureMap_UnmarshalPreservesOrder(t *testing.T) {
	var features FeatureMap
	err := json.Unmarshal([]byte(`{"url_length":19,"has_ip":false,"domain":"example.com","entropy":3.25,"extra":null}`), &features)
	require.NoError(t, err)

	assert.Equal(t, []string{"url_length", "has_ip", "domain", "entropy", "extra"}, features.Names())

	v, ok := features.Get("url_length")
	require.True(t, ok)
	assert.Equal(t, int64(19), v)

	v, _ = features.Get("entropy")
	assert.Equal(t, 3.25, v)

	v, _ = features.Get("has_ip")
	assert.Equal(t, false, v)
}

func TestFeatureMap_UnmarshalRejectsNonObject(t *testing.T) {
	var features FeatureMap
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &features))
}

func TestFeatureMap_UnmarshalNull(t *testing.T) {
	features := FeatureMap{{Name: "a", Value: true}}
	require.NoError(t, json.Unmarshal([]byte(`null`), &features))
	assert.Nil(t, features)
}

func TestFeatureMap_MarshalKeepsOrder(t *testing.T) {
	features := FeatureMap{}
	features.Set("zeta", 1)
	features.Set("alpha", true)
	features.Set("zeta", 2)

	data, err := json.Marshal(features)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":2,"alpha":true}`, string(data))
}

func TestHumanizeFeatureName(t *testing.T) {
	tests := map[string]string{
		"has_ip":             "Has Ip",
		"url_length":         "Url Length",
		"domain_trusted":     "Domain Trusted",
		"single":             "Single",
		"double__underscore": "Double  Underscore",
		"émoji_count":        "Émoji Count",
		"ñandu_score":        "Ñandu Score",
	}
	for in, want := range tests {
		assert.Equal(t, want, HumanizeFeatureName(in), in)
	}
}

func TestFormatFeatureValue(t *testing.T) {
	assert.Equal(t, "Yes", FormatFeatureValue(true))
	assert.Equal(t, "No", FormatFeatureValue(false))
	assert.Equal(t, "19", FormatFeatureValue(int64(19)))
	assert.Equal(t, "0.5", FormatFeatureValue(0.5))
	assert.Equal(t, "example.com", FormatFeatureValue("example.com"))
	assert.Equal(t, "N/A", FormatFeatureValue(nil))
}
