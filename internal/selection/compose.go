package selection

import "github.com/nataliatalam/raimon/internal/contract"

// composeReasons builds the reason code list for a selection in fixed order:
// pool provenance, time fit, energy fit, then priority preference. Capped at
// contract.MaxReasonCodes entries.
func composeReasons(selected scored, cons Constraints, usedFallback bool) []string {
	codes := make([]string, 0, contract.MaxReasonCodes)

	if usedFallback {
		codes = append(codes, contract.ReasonFallbackBestOverall)
	} else {
		codes = append(codes, contract.ReasonConstraintsFit)
	}

	if selected.Duration <= cons.MaxMinutes {
		codes = append(codes, contract.ReasonTimeFit)
	} else {
		codes = append(codes, contract.ReasonTimeOver)
	}

	if selected.EnergyReq <= cons.CurrentEnergy {
		codes = append(codes, contract.ReasonEnergyFit)
	} else {
		codes = append(codes, contract.ReasonEnergyOver)
	}

	if cons.PreferPriority != "" && candidatePriority(selected.Source) == cons.PreferPriority {
		codes = append(codes, contract.ReasonPriorityPreferred)
	}

	if len(codes) > contract.MaxReasonCodes {
		codes = codes[:contract.MaxReasonCodes]
	}
	return codes
}

// composeAlternatives returns up to contract.MaxAlternatives task ids from
// the globally sorted candidate list, preserving sort order and excluding
// the selected id.
func composeAlternatives(sortedAll []scored, selectedID string) []string {
	alts := make([]string, 0, contract.MaxAlternatives)
	for _, c := range sortedAll {
		if c.TaskID == selectedID {
			continue
		}
		alts = append(alts, c.TaskID)
		if len(alts) == contract.MaxAlternatives {
			break
		}
	}
	return alts
}
