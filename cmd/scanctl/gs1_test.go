package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGS1Cmd_DecodificaConMarcadorGS(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"gs1", "0109501101530003" + "10LOT42<GS>17261231"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"gtin":"09501101530003","lot":"LOT42","expiry":"2026-12-31"}`, out.String())
}

func TestGS1Cmd_NoGS1EsError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"gs1", "WH-A-01"})

	assert.Error(t, cmd.Execute())
}

func TestExpandGS(t *testing.T) {
	assert.Equal(t, "10A\x1d21B", expandGS(`10A\x1d21B`))
	assert.Equal(t, "10A\x1d21B", expandGS("10A<GS>21B"))
	assert.Equal(t, "Ñandú", expandGS("Ñandú"))
}
