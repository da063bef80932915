package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	porous "github.com/willsbit/acustica-de-salas"
)

func TestEvaluateModel_JCA(t *testing.T) {
	f := porous.OctaveBands()

	zc, kc, err := evaluateModel("jca", f, defaultSigma, defaultTortuosity, defaultPorosity, defaultViscousLength, porous.DefaultAir())
	require.NoError(t, err)
	assert.Len(t, zc, len(f))
	assert.Len(t, kc, len(f))
}

func TestEvaluateModel_DelanyBazleyVariants(t *testing.T) {
	f := porous.OctaveBands()
	air := porous.DefaultAir()

	zc, kc, err := evaluateModel("delany-bazley", f, 4000, 0, 0, 0, air)
	require.NoError(t, err)
	zcAlt, kcAlt, err := evaluateModel("delany-bazley-alt", f, 4000, 0, 0, 0, air)
	require.NoError(t, err)

	assert.Equal(t, zc, zcAlt)
	assert.NotEqual(t, kc, kcAlt)
}

func TestEvaluateModel_Errors(t *testing.T) {
	f := porous.OctaveBands()
	air := porous.DefaultAir()

	_, _, err := evaluateModel("nonsense", f, defaultSigma, defaultTortuosity, defaultPorosity, defaultViscousLength, air)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model")

	_, _, err = evaluateModel("delany-bazley", f, -1, 0, 0, 0, air)
	require.Error(t, err)
	assert.ErrorIs(t, err, porous.ErrInvalidParameter)

	_, _, err = evaluateModel("jca", f, defaultSigma, 0.5, defaultPorosity, defaultViscousLength, air)
	require.Error(t, err)
	assert.ErrorIs(t, err, porous.ErrInvalidParameter)
}
