package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTenants() []Tenant {
	return []Tenant{
		{Name: "Cliente A", Credential: "Basic aaa"},
		{Name: "Cliente B", Credential: "Basic bbb"},
		{Name: "Cliente C", Credential: "Basic ccc"},
	}
}

func TestNewRegistry_RequiresTenants(t *testing.T) {
	_, err := NewRegistry(nil)
	assert.Error(t, err)
}

func TestNewRegistry_RejectsDuplicateNames(t *testing.T) {
	_, err := NewRegistry([]Tenant{
		{Name: "Same", Credential: "Basic one"},
		{Name: "Same", Credential: "Basic two"},
	})
	assert.Error(t, err)
}

func TestDefaultIsFirstRegistered(t *testing.T) {
	reg, err := NewRegistry(testTenants())
	require.NoError(t, err)

	assert.Equal(t, "Cliente A", reg.Default().Name)
}

func TestByNameIsExactMatch(t *testing.T) {
	reg, err := NewRegistry(testTenants())
	require.NoError(t, err)

	got, ok := reg.ByName("Cliente B")
	require.True(t, ok)
	assert.Equal(t, "Basic bbb", got.Credential)

	_, ok = reg.ByName("cliente b")
	assert.False(t, ok)
}

func TestAfterCyclesInOrder(t *testing.T) {
	reg, err := NewRegistry(testTenants())
	require.NoError(t, err)

	b := reg.After(reg.Default())
	assert.Equal(t, "Cliente B", b.Name)
	c := reg.After(b)
	assert.Equal(t, "Cliente C", c.Name)
	assert.Equal(t, "Cliente A", reg.After(c).Name)
}

func TestAllIsACopy(t *testing.T) {
	reg, err := NewRegistry(testTenants())
	require.NoError(t, err)

	all := reg.All()
	all[0].Name = "mutated"

	assert.Equal(t, "Cliente A", reg.Default().Name)
}

func TestStringHidesCredential(t *testing.T) {
	tn := Tenant{Name: "Cliente A", Credential: "Basic secret"}
	assert.Equal(t, "Cliente A", tn.String())
}
