package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pos-pricing/internal/errors"
)

func TestRegistryRegisterFind(t *testing.T) {
	r := NewRegistry()
	flat := NewFlatCharge(dec("10"))
	tax := NewTaxAddition(dec("10"))

	r.Register(flat)
	r.Register(tax)

	got, ok := r.Find(NameTaxAddition)
	require.True(t, ok)
	require.Same(t, tax, got)
	require.Equal(t, []string{NameFlatCharge, NameTaxAddition}, r.Names())
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	for _, s := range Defaults(dec("10")) {
		r.Register(s)
	}

	r.Remove(NameThresholdRebate)
	_, ok := r.Find(NameThresholdRebate)
	require.False(t, ok)
	require.Equal(t, 3, r.Len())

	require.NotPanics(t, func() { r.Remove("no such strategy") })
	require.Equal(t, 3, r.Len())
}

func TestRegistryNilIsIgnored(t *testing.T) {
	r := NewRegistry()

	r.Register(nil)
	require.Equal(t, 0, r.Len())

	r.Register(NewFlatCharge(dec("1")))
	require.NotPanics(t, func() { r.Unregister(nil) })
	require.Equal(t, 1, r.Len())
}

func TestRegistryUnregisterByName(t *testing.T) {
	r := NewRegistry()
	registered := NewPercentageDiscount(dec("10"))
	r.Register(registered)

	// A different instance with the same name removes the registered one
	r.Unregister(NewPercentageDiscount(dec("99")))

	_, ok := r.Find(NamePercentageDiscount)
	require.False(t, ok)
}

func TestRegistryDuplicatesResolveToFirst(t *testing.T) {
	r := NewRegistry()
	first := NewFlatCharge(dec("1"))
	second := NewFlatCharge(dec("2"))
	r.Register(first)
	r.Register(second)

	got, ok := r.Find(NameFlatCharge)
	require.True(t, ok)
	require.Same(t, first, got)

	r.Remove(NameFlatCharge)
	got, ok = r.Find(NameFlatCharge)
	require.True(t, ok)
	require.Same(t, second, got)
}

func TestRegistryAt(t *testing.T) {
	r := NewRegistry()
	for _, s := range Defaults(dec("10")) {
		r.Register(s)
	}

	s, err := r.At(1)
	require.NoError(t, err)
	require.Equal(t, NameFlatCharge, s.Name())

	s, err = r.At(4)
	require.NoError(t, err)
	require.Equal(t, NameTaxAddition, s.Name())

	for _, position := range []int{0, 5, -1} {
		_, err := r.At(position)
		require.Error(t, err)
		require.True(t, errors.IsType(err, errors.TypeNotFound))
	}
}

func TestRegistryListIsACopy(t *testing.T) {
	r := NewRegistry()
	r.Register(NewFlatCharge(dec("1")))

	list := r.List()
	list[0] = nil

	s, err := r.At(1)
	require.NoError(t, err)
	require.NotNil(t, s)
}
