package bodymetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIMC(t *testing.T) {
	imc, err := IMC(70, 175)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, imc, 0.01)
	assert.Equal(t, "Peso normal", IMCCategory(imc))

	_, err = IMC(0, 175)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = IMC(70, 300)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestIMCCategory(t *testing.T) {
	tests := []struct {
		imc  float64
		want string
	}{
		{17.9, "Abaixo do peso"},
		{18.5, "Peso normal"},
		{24.99, "Peso normal"},
		{25, "Sobrepeso"},
		{30, "Obesidade grau I"},
		{35, "Obesidade grau II"},
		{40, "Obesidade grau III"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IMCCategory(tt.imc), "imc %.2f", tt.imc)
	}
}

func TestTMB(t *testing.T) {
	male, err := TMB(80, 180, 30, Male)
	require.NoError(t, err)
	// 800 + 1125 - 150 + 5
	assert.InDelta(t, 1780, male, 0.001)

	female, err := TMB(60, 165, 25, Female)
	require.NoError(t, err)
	// 600 + 1031.25 - 125 - 161
	assert.InDelta(t, 1345.25, female, 0.001)

	_, err = TMB(80, 180, 5, Male)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = TMB(80, 180, 30, Sex("x"))
	assert.ErrorIs(t, err, ErrUnknownSex)
}

func TestDailyCalories(t *testing.T) {
	kcal, err := DailyCalories(1780, "moderate")
	require.NoError(t, err)
	assert.InDelta(t, 2759, kcal, 0.001)

	_, err = DailyCalories(1780, "couch")
	assert.ErrorIs(t, err, ErrUnknownActivity)
}

func TestParseSex(t *testing.T) {
	for _, in := range []string{"male", "M", "masculino"} {
		s, err := ParseSex(in)
		require.NoError(t, err)
		assert.Equal(t, Male, s)
	}
	s, err := ParseSex("Feminino")
	require.NoError(t, err)
	assert.Equal(t, Female, s)

	_, err = ParseSex("?")
	assert.ErrorIs(t, err, ErrUnknownSex)
}
