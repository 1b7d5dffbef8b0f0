package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testRun() *Run {
	return &Run{cfg: &Config{values: map[string]any{}}}
}

func TestValidateOne_DefaultSubstitutedWhenAbsent(t *testing.T) {
	v := NewValidator(MustSchema(), nil, nil)
	opt := StringDefault("fallback")

	got, err := v.validateOne(testRun(), Entry{Key: "k", Option: opt}, nil)
	require.NoError(t, err)
	require.Equal(t, "fallback", got)
}

func TestValidateOne_RequiredWithoutDefaultFails(t *testing.T) {
	v := NewValidator(MustSchema(), nil, nil)
	opt := &TypeOption{BaseOption: BaseOption{IsRequired: true}, Types: []ValueType{TypeString}}

	_, err := v.validateOne(testRun(), Entry{Key: "k", Option: opt}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "required configuration not provided")
}

func TestValidateOne_OptionalWithoutDefaultResolvesToAbsent(t *testing.T) {
	v := NewValidator(MustSchema(), nil, nil)

	got, err := v.validateOne(testRun(), Entry{Key: "k", Option: String()}, nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestValidateOne_PresentValueDelegatesToCheck(t *testing.T) {
	v := NewValidator(MustSchema(), nil, nil)

	got, err := v.validateOne(testRun(), Entry{Key: "k", Option: String()}, "hello")
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	_, err = v.validateOne(testRun(), Entry{Key: "k", Option: String()}, 42)
	require.Error(t, err)
}

func TestBaseOption_PassesValueThrough(t *testing.T) {
	var opt Option = BaseOption{}
	got, err := opt.Check(testRun(), map[string]any{"free": "form"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"free": "form"}, got)
	require.NoError(t, opt.PostValidate(testRun(), "k"))
	require.Empty(t, opt.DependsOn())
}

func TestRun_WarningsAccumulateInOrder(t *testing.T) {
	run := testRun()
	run.Warn("a", "first")
	run.Warn("b", "second")
	require.Equal(t, []Warning{{"a", "first"}, {"b", "second"}}, run.Warnings())
}
