package algo

import (
	"testing"

	"github.com/huangsam/nutriplan/schema"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.4, 1},
		{1.5, 2},
		{2.5, 3},
		{-1.5, -1},
		{-2.5, -2},
		{-2.6, -3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHalfUp(tt.in), "input %v", tt.in)
	}
	assert.Equal(t, 1394, RoundInt(1393.5))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 22.9, Round1(22.857142857))
	assert.Equal(t, 4.6, Round1(20/4.33))
	assert.Equal(t, 0.0, Round1(0.04))
	assert.Equal(t, 0.1, Round1(0.05))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3.0, Clamp(1.2, 3, 50))
	assert.Equal(t, 50.0, Clamp(61, 3, 50))
	assert.Equal(t, 28.9, Clamp(28.9, 3, 50))
}

func TestBMI(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		want   float64
	}{
		{"reference adult", 70, 175, 22.9},
		{"female onboarding example", 65, 168, 23.0},
		{"target weight", 55, 168, 19.5},
		{"tall and light", 30, 250, 4.8},
		{"zero height", 70, 0, 0},
		{"negative height", 70, -170, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BMI(tt.weight, tt.height))
		})
	}
}

func TestWeightAtBMI(t *testing.T) {
	assert.Equal(t, 52.2, WeightAtBMI(UnderweightBMI, 168))
	assert.Equal(t, 84.7, WeightAtBMI(ObeseBMI, 168))
	assert.Equal(t, 66.8, WeightAtBMI(UnderweightBMI, 190))
	assert.Equal(t, 0.0, WeightAtBMI(UnderweightBMI, 0))
}

func TestIdealWeight(t *testing.T) {
	tests := []struct {
		height float64
		sex    schema.Sex
		want   float64
	}{
		{168, schema.FemaleSex, 60.8},
		{168, schema.OtherSex, 60.8},
		{180, schema.MaleSex, 72.5},
		{175, schema.MaleSex, 68.8},
		{150, schema.MaleSex, 50},
		{190, schema.MaleSex, 80},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IdealWeight(tt.height, tt.sex), "height %v sex %s", tt.height, tt.sex)
	}
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, UnderweightCategory, BMICategory(18.4))
	assert.Equal(t, NormalCategory, BMICategory(18.5))
	assert.Equal(t, NormalCategory, BMICategory(24.9))
	assert.Equal(t, OverweightCategory, BMICategory(25))
	assert.Equal(t, ObeseCategory, BMICategory(30))
	assert.Equal(t, UnderweightCategory, BMICategory(0))
}
