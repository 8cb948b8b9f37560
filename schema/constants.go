package schema

// Custom string types for type safety.
type (
	// Sex selects the formula variant used by the sex-dependent calculations.
	Sex string

	// ActivityLevel represents the self-reported weekly activity of a person.
	ActivityLevel string

	// Goal represents the dietary objective of a person.
	Goal string

	// SafetyTier represents the ordered risk classification of a weight goal.
	SafetyTier string

	// Direction represents the sign of a requested weight change.
	Direction string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for profile storage.
	DatabaseBackend string
)

// All sexes supported.
const (
	MaleSex   Sex = "MALE"
	FemaleSex Sex = "FEMALE"
	OtherSex  Sex = "OTHER" // uses the female formulas
)

// All activity levels supported.
const (
	SedentaryLevel  ActivityLevel = "SEDENTARY"
	LightLevel      ActivityLevel = "LIGHT"
	ModerateLevel   ActivityLevel = "MODERATE"
	ActiveLevel     ActivityLevel = "ACTIVE"
	VeryActiveLevel ActivityLevel = "VERY_ACTIVE"
)

// All goals supported.
const (
	LoseWeightGoal Goal = "LOSE_WEIGHT"
	MaintainGoal   Goal = "MAINTAIN"
	GainMuscleGoal Goal = "GAIN_MUSCLE"
)

// All safety tiers, from least to most severe.
const (
	SafeTier      SafetyTier = "safe"
	ModerateTier  SafetyTier = "moderate"
	RiskyTier     SafetyTier = "risky"
	DangerousTier SafetyTier = "dangerous"
)

// All weight change directions.
const (
	LossDirection     Direction = "loss"
	GainDirection     Direction = "gain"
	MaintainDirection Direction = "maintain"
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All storage backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllSexes lists every sex in display order.
var AllSexes = []Sex{MaleSex, FemaleSex, OtherSex}

// AllActivityLevels lists every activity level from least to most active.
var AllActivityLevels = []ActivityLevel{SedentaryLevel, LightLevel, ModerateLevel, ActiveLevel, VeryActiveLevel}

// AllGoals lists every goal in display order.
var AllGoals = []Goal{LoseWeightGoal, MaintainGoal, GainMuscleGoal}

// AllSafetyTiers lists every tier from least to most severe.
var AllSafetyTiers = []SafetyTier{SafeTier, ModerateTier, RiskyTier, DangerousTier}

// ValidSexes lists all valid sexes.
var ValidSexes = map[Sex]struct{}{
	MaleSex:   {},
	FemaleSex: {},
	OtherSex:  {},
}

// ValidActivityLevels lists all valid activity levels.
var ValidActivityLevels = map[ActivityLevel]struct{}{
	SedentaryLevel:  {},
	LightLevel:      {},
	ModerateLevel:   {},
	ActiveLevel:     {},
	VeryActiveLevel: {},
}

// ValidGoals lists all valid goals.
var ValidGoals = map[Goal]struct{}{
	LoseWeightGoal: {},
	MaintainGoal:   {},
	GainMuscleGoal: {},
}

// ValidSafetyTiers lists all valid safety tiers.
var ValidSafetyTiers = map[SafetyTier]struct{}{
	SafeTier:      {},
	ModerateTier:  {},
	RiskyTier:     {},
	DangerousTier: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid storage backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
