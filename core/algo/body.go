package algo

import "github.com/huangsam/nutriplan/schema"

// BMI thresholds used by the safety analyzer and category labels.
const (
	UnderweightBMI = 18.5 // lower bound of a normal weight
	OverweightBMI  = 25.0
	ObeseBMI       = 30.0 // upper bound of an acceptable target
)

// BMI category labels.
const (
	UnderweightCategory = "Underweight"
	NormalCategory      = "Normal"
	OverweightCategory  = "Overweight"
	ObeseCategory       = "Obese"
)

// heightInMetersSquared returns (height/100)^2, or 0 for a non-positive height.
func heightInMetersSquared(height float64) float64 {
	if height <= 0 {
		return 0
	}
	m := height / 100
	return m * m
}

// BMI returns weight (kg) over height (cm, converted to m) squared, rounded
// to one decimal. A non-positive height yields 0.
func BMI(weight, height float64) float64 {
	h2 := heightInMetersSquared(height)
	if h2 == 0 {
		return 0
	}
	return Round1(weight / h2)
}

// WeightAtBMI returns the weight (kg) at which a person of the given height
// reaches the given BMI, rounded to one decimal.
func WeightAtBMI(bmi, height float64) float64 {
	return Round1(bmi * heightInMetersSquared(height))
}

// IdealWeight returns the Lorentz ideal weight for a height (cm), rounded to one decimal.
//
//	male:         h - 100 - (h - 150) / 4
//	female/other: h - 100 - (h - 150) / 2.5
func IdealWeight(height float64, sex schema.Sex) float64 {
	divisor := 2.5
	if sex.UsesMaleFormula() {
		divisor = 4
	}
	return Round1(height - 100 - (height-150)/divisor)
}

// BMICategory returns the WHO weight category for a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < UnderweightBMI:
		return UnderweightCategory
	case bmi < OverweightBMI:
		return NormalCategory
	case bmi < ObeseBMI:
		return OverweightCategory
	default:
		return ObeseCategory
	}
}
