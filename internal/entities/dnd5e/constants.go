package dnd5e

// Ability constants
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// Skill constants
const (
	SkillAcrobatics     = "acrobatics"
	SkillAnimalHandling = "animal-handling"
	SkillArcana         = "arcana"
	SkillAthletics      = "athletics"
	SkillDeception      = "deception"
	SkillHistory        = "history"
	SkillInsight        = "insight"
	SkillIntimidation   = "intimidation"
	SkillInvestigation  = "investigation"
	SkillMedicine       = "medicine"
	SkillNature         = "nature"
	SkillPerception     = "perception"
	SkillPerformance    = "performance"
	SkillPersuasion     = "persuasion"
	SkillReligion       = "religion"
	SkillSleightOfHand  = "sleight-of-hand"
	SkillStealth        = "stealth"
	SkillSurvival       = "survival"
)

// Proficiency kinds
const (
	ProficiencyArmor       ProficiencyKind = "armor"
	ProficiencyWeapon      ProficiencyKind = "weapon"
	ProficiencyTool        ProficiencyKind = "tool"
	ProficiencySkill       ProficiencyKind = "skill"
	ProficiencySavingThrow ProficiencyKind = "savingThrow"
)

// Vision types
const (
	VisionDarkvision  VisionType = "darkvision"
	VisionBlindsight  VisionType = "blindsight"
	VisionTremorsense VisionType = "tremorsense"
	VisionTruesight   VisionType = "truesight"
)

const (
	// DefaultSpeed is the walking speed used when nothing grants one
	DefaultSpeed = 30

	// CategoryPlaceholderPrefix marks a proficiency granted for a whole category
	CategoryPlaceholderPrefix = "category:"

	// MinAbilityScore and MaxAbilityScore bound a single ability score
	MinAbilityScore = 1
	MaxAbilityScore = 30

	// MaxLevel is the highest character level
	MaxLevel = 20
)

// AllAbilities lists the six abilities in sheet order
var AllAbilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AllVisionTypes lists the vision categories tracked on a sheet
var AllVisionTypes = []VisionType{
	VisionDarkvision,
	VisionBlindsight,
	VisionTremorsense,
	VisionTruesight,
}

// AllSkills lists every skill key with its governing ability
var AllSkills = map[string]Ability{
	SkillAcrobatics:     AbilityDexterity,
	SkillAnimalHandling: AbilityWisdom,
	SkillArcana:         AbilityIntelligence,
	SkillAthletics:      AbilityStrength,
	SkillDeception:      AbilityCharisma,
	SkillHistory:        AbilityIntelligence,
	SkillInsight:        AbilityWisdom,
	SkillIntimidation:   AbilityCharisma,
	SkillInvestigation:  AbilityIntelligence,
	SkillMedicine:       AbilityWisdom,
	SkillNature:         AbilityIntelligence,
	SkillPerception:     AbilityWisdom,
	SkillPerformance:    AbilityCharisma,
	SkillPersuasion:     AbilityCharisma,
	SkillReligion:       AbilityIntelligence,
	SkillSleightOfHand:  AbilityDexterity,
	SkillStealth:        AbilityDexterity,
	SkillSurvival:       AbilityWisdom,
}
