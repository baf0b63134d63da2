package parser

import "github.com/hammamikhairi/shotgraph/internal/domain"

var commandTable = tableOf(map[domain.CommandKey]parseFunc[domain.Value]{
	domain.CommandAdvancedShot:                             textValue,
	domain.CommandAuthor:                                   textValue,
	domain.CommandBeverageType:                             beverageTypeValue,
	domain.CommandEspressoDeclineTime:                      numberValue,
	domain.CommandEspressoHoldTime:                         numberValue,
	domain.CommandEspressoPressure:                         numberValue,
	domain.CommandEspressoTemperature:                      numberValue,
	domain.CommandEspressoTemperature0:                     numberValue,
	domain.CommandEspressoTemperature1:                     numberValue,
	domain.CommandEspressoTemperature2:                     numberValue,
	domain.CommandEspressoTemperature3:                     numberValue,
	domain.CommandEspressoTemperatureStepsEnabled:          boolValue,
	domain.CommandFinalDesiredShotVolume:                   numberValue,
	domain.CommandFinalDesiredShotVolumeAdvanced:           numberValue,
	domain.CommandFinalDesiredShotVolumeAdvancedCountStart: numberValue,
	domain.CommandFinalDesiredShotWeight:                   numberValue,
	domain.CommandFinalDesiredShotWeightAdvanced:           numberValue,
	domain.CommandFlowProfileDecline:                       numberValue,
	domain.CommandFlowProfileDeclineTime:                   numberValue,
	domain.CommandFlowProfileHold:                          numberValue,
	domain.CommandFlowProfileHoldTime:                      numberValue,
	domain.CommandFlowProfileMinimumPressure:               numberValue,
	domain.CommandFlowProfilePreinfusion:                   numberValue,
	domain.CommandFlowProfilePreinfusionTime:               numberValue,
	domain.CommandMaximumFlow:                              numberValue,
	domain.CommandMaximumFlowRange:                         numberValue,
	domain.CommandMaximumFlowRangeAdvanced:                 numberValue,
	domain.CommandMaximumFlowRangeDefault:                  numberValue,
	domain.CommandMaximumPressure:                          numberValue,
	domain.CommandMaximumPressureRange:                     numberValue,
	domain.CommandMaximumPressureRangeAdvanced:             numberValue,
	domain.CommandMaximumPressureRangeDefault:              numberValue,
	domain.CommandPreinfusionFlowRate:                      numberValue,
	domain.CommandPreinfusionGuarantee:                     boolValue,
	domain.CommandPreinfusionStopPressure:                  numberValue,
	domain.CommandPreinfusionTime:                          numberValue,
	domain.CommandPressureEnd:                              numberValue,
	domain.CommandProfileHide:                              boolValue,
	domain.CommandProfileLanguage:                          textValue,
	domain.CommandProfileNotes:                             textValue,
	domain.CommandProfileTitle:                             textValue,
	domain.CommandSettingsProfileType:                      profileTypeValue,
	domain.CommandTankDesiredWaterTemperature:              numberValue,
	domain.CommandWaterTemperature:                         numberValue,
	domain.CommandBeanBrand:                                textValue,
	domain.CommandBeanType:                                 textValue,
	domain.CommandGrinderDoseWeight:                        numberValue,
	domain.CommandGrinderModel:                             textValue,
	domain.CommandGrinderSetting:                           textValue,
})

var commandPair = keyed(commandTable, textValue)

// command reads one top-level `key value` pair.
func command(in string) (domain.Command, string, error) {
	c, rest, err := commandPair(in)
	if err != nil {
		return domain.Command{}, in, err
	}
	if !c.known {
		return domain.Command{Key: domain.CommandUnknown, Ident: c.ident, Value: c.value}, rest, nil
	}
	return domain.Command{Key: c.key, Value: c.value}, rest, nil
}

var commands = list(command)

// ParseProfile parses a whole profile document. Anything other than
// whitespace left after the command list is an error, so a document is
// either read completely or rejected.
func ParseProfile(src []byte) (domain.Profile, error) {
	text := string(src)
	cmds, rest, err := commands(space0(text))
	if err == nil {
		err = trailing(rest)
	}
	if err != nil {
		return nil, locate(err, text)
	}
	return domain.Profile(cmds), nil
}
