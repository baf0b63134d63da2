package domain

import "fmt"

// CommandKey identifies a top-level setting in a profile document.
type CommandKey int

const (
	// CommandUnknown is a well-formed command whose key is not recognised.
	CommandUnknown CommandKey = iota
	CommandAdvancedShot
	CommandAuthor
	CommandBeverageType
	CommandEspressoDeclineTime
	CommandEspressoHoldTime
	CommandEspressoPressure
	CommandEspressoTemperature
	CommandEspressoTemperature0
	CommandEspressoTemperature1
	CommandEspressoTemperature2
	CommandEspressoTemperature3
	CommandEspressoTemperatureStepsEnabled
	CommandFinalDesiredShotVolume
	CommandFinalDesiredShotVolumeAdvanced
	CommandFinalDesiredShotVolumeAdvancedCountStart
	CommandFinalDesiredShotWeight
	CommandFinalDesiredShotWeightAdvanced
	CommandFlowProfileDecline
	CommandFlowProfileDeclineTime
	CommandFlowProfileHold
	CommandFlowProfileHoldTime
	CommandFlowProfileMinimumPressure
	CommandFlowProfilePreinfusion
	CommandFlowProfilePreinfusionTime
	CommandMaximumFlow
	CommandMaximumFlowRange
	CommandMaximumFlowRangeAdvanced
	CommandMaximumFlowRangeDefault
	CommandMaximumPressure
	CommandMaximumPressureRange
	CommandMaximumPressureRangeAdvanced
	CommandMaximumPressureRangeDefault
	CommandPreinfusionFlowRate
	CommandPreinfusionGuarantee
	CommandPreinfusionStopPressure
	CommandPreinfusionTime
	CommandPressureEnd
	CommandProfileHide
	CommandProfileLanguage
	CommandProfileNotes
	CommandProfileTitle
	CommandSettingsProfileType
	CommandTankDesiredWaterTemperature
	CommandWaterTemperature
	CommandBeanBrand
	CommandBeanType
	CommandGrinderDoseWeight
	CommandGrinderModel
	CommandGrinderSetting
)

var commandKeyNames = [...]string{
	CommandUnknown:                                  "unknown",
	CommandAdvancedShot:                             "advanced_shot",
	CommandAuthor:                                   "author",
	CommandBeverageType:                             "beverage_type",
	CommandEspressoDeclineTime:                      "espresso_decline_time",
	CommandEspressoHoldTime:                         "espresso_hold_time",
	CommandEspressoPressure:                         "espresso_pressure",
	CommandEspressoTemperature:                      "espresso_temperature",
	CommandEspressoTemperature0:                     "espresso_temperature_0",
	CommandEspressoTemperature1:                     "espresso_temperature_1",
	CommandEspressoTemperature2:                     "espresso_temperature_2",
	CommandEspressoTemperature3:                     "espresso_temperature_3",
	CommandEspressoTemperatureStepsEnabled:          "espresso_temperature_steps_enabled",
	CommandFinalDesiredShotVolume:                   "final_desired_shot_volume",
	CommandFinalDesiredShotVolumeAdvanced:           "final_desired_shot_volume_advanced",
	CommandFinalDesiredShotVolumeAdvancedCountStart: "final_desired_shot_volume_advanced_count_start",
	CommandFinalDesiredShotWeight:                   "final_desired_shot_weight",
	CommandFinalDesiredShotWeightAdvanced:           "final_desired_shot_weight_advanced",
	CommandFlowProfileDecline:                       "flow_profile_decline",
	CommandFlowProfileDeclineTime:                   "flow_profile_decline_time",
	CommandFlowProfileHold:                          "flow_profile_hold",
	CommandFlowProfileHoldTime:                      "flow_profile_hold_time",
	CommandFlowProfileMinimumPressure:               "flow_profile_minimum_pressure",
	CommandFlowProfilePreinfusion:                   "flow_profile_preinfusion",
	CommandFlowProfilePreinfusionTime:               "flow_profile_preinfusion_time",
	CommandMaximumFlow:                              "maximum_flow",
	CommandMaximumFlowRange:                         "maximum_flow_range",
	CommandMaximumFlowRangeAdvanced:                 "maximum_flow_range_advanced",
	CommandMaximumFlowRangeDefault:                  "maximum_flow_range_default",
	CommandMaximumPressure:                          "maximum_pressure",
	CommandMaximumPressureRange:                     "maximum_pressure_range",
	CommandMaximumPressureRangeAdvanced:             "maximum_pressure_range_advanced",
	CommandMaximumPressureRangeDefault:              "maximum_pressure_range_default",
	CommandPreinfusionFlowRate:                      "preinfusion_flow_rate",
	CommandPreinfusionGuarantee:                     "preinfusion_guarantee",
	CommandPreinfusionStopPressure:                  "preinfusion_stop_pressure",
	CommandPreinfusionTime:                          "preinfusion_time",
	CommandPressureEnd:                              "pressure_end",
	CommandProfileHide:                              "profile_hide",
	CommandProfileLanguage:                          "profile_language",
	CommandProfileNotes:                             "profile_notes",
	CommandProfileTitle:                             "profile_title",
	CommandSettingsProfileType:                      "settings_profile_type",
	CommandTankDesiredWaterTemperature:              "tank_desired_water_temperature",
	CommandWaterTemperature:                         "water_temperature",
	CommandBeanBrand:                                "bean_brand",
	CommandBeanType:                                 "bean_type",
	CommandGrinderDoseWeight:                        "grinder_dose_weight",
	CommandGrinderModel:                             "grinder_model",
	CommandGrinderSetting:                           "grinder_setting",
}

// String returns the key as written in profile documents.
func (k CommandKey) String() string {
	if k < 0 || int(k) >= len(commandKeyNames) {
		return "unknown"
	}
	return commandKeyNames[k]
}

// Command is one top-level key/value pair of a profile document.
type Command struct {
	Key   CommandKey
	Ident string // raw key, set only when Key is CommandUnknown
	Value Value
}

// Name returns the key as written in the source document.
func (c Command) Name() string {
	if c.Key == CommandUnknown {
		return c.Ident
	}
	return c.Key.String()
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s", c.Name(), c.Value)
}

// Profile is the parsed form of one document, commands in source order.
type Profile []Command

// Lookup returns the first command with the given key.
func (p Profile) Lookup(key CommandKey) (Command, bool) {
	for _, c := range p {
		if c.Key == key {
			return c, true
		}
	}
	return Command{}, false
}

func (p Profile) text(key CommandKey) (string, bool) {
	c, ok := p.Lookup(key)
	if !ok {
		return "", false
	}
	t, ok := c.Value.(Text)
	return string(t), ok
}

// IsProfileType reports whether any settings_profile_type command in the
// document names ty.
func (p Profile) IsProfileType(ty ProfileType) bool {
	for _, c := range p {
		if c.Key == CommandSettingsProfileType && c.Value == ty {
			return true
		}
	}
	return false
}

// Title returns the profile_title.
func (p Profile) Title() (string, bool) { return p.text(CommandProfileTitle) }

// Notes returns the profile_notes.
func (p Profile) Notes() (string, bool) { return p.text(CommandProfileNotes) }

// Author returns the author.
func (p Profile) Author() (string, bool) { return p.text(CommandAuthor) }

// AdvancedShot returns the raw step text of the advanced_shot command,
// terminated with a newline.
func (p Profile) AdvancedShot() (string, bool) {
	s, ok := p.text(CommandAdvancedShot)
	if !ok {
		return "", false
	}
	return s + "\n", true
}

// Beverage returns the beverage_type.
func (p Profile) Beverage() (BeverageType, bool) {
	c, ok := p.Lookup(CommandBeverageType)
	if !ok {
		return 0, false
	}
	b, ok := c.Value.(BeverageType)
	return b, ok
}
