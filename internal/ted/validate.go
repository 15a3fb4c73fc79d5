package ted

import (
	"context"
	"fmt"
)

// ExistenceChecker answers whether an entity with the given external
// reference is already persisted. Satisfied by the notice and award stores.
type ExistenceChecker interface {
	Exists(ctx context.Context, ojsRef string) (bool, error)
}

// Rules carries the configured target codes the validator checks against.
type Rules struct {
	SupportedSchemas         []string
	TargetCPVCode            string
	TargetContractNatureCode string
}

// Validator checks structural and business preconditions on a parsed
// document. Business-rule violations are returned as data, never as errors;
// the error return is reserved for storage failures during existence checks.
type Validator struct {
	rules   Rules
	notices ExistenceChecker
	awards  ExistenceChecker
}

// NewValidator builds a Validator over the configured rules and the two
// duplicate-guard lookups.
func NewValidator(rules Rules, notices, awards ExistenceChecker) *Validator {
	return &Validator{rules: rules, notices: notices, awards: awards}
}

// Check runs every applicable rule and collects all violations, in a stable
// user-facing order. Checks that depend on an earlier check's success are
// skipped when that check fails: nothing can be evaluated without a supported
// schema, and the type-specific checks need a supported document type.
//
// accepted is true iff the violation list is empty.
func (v *Validator) Check(ctx context.Context, doc *Document) (accepted bool, violations []string, err error) {
	if !v.schemaSupported(doc.SchemaVersion()) {
		return false, []string{"XML schema version is not supported."}, nil
	}

	if doc.ContractNatureCode() != v.rules.TargetContractNatureCode {
		violations = append(violations,
			fmt.Sprintf("Contract nature is not %q.", v.rules.TargetContractNatureCode))
	}

	docType := doc.Type()
	if docType == DocTypeUnsupported {
		violations = append(violations, "Document type is not supported.")
		return len(violations) == 0, violations, nil
	}

	if !doc.LotDivision() {
		violations = append(violations, typeName(docType)+" is not divided into Lots.")
	}

	if doc.CPVCode() != v.rules.TargetCPVCode {
		violations = append(violations,
			fmt.Sprintf("CPV code is not %q.", v.rules.TargetCPVCode))
	}

	// The duplicate and cross-reference guards only run on an otherwise
	// clean document, matching the order violations are surfaced in.
	if len(violations) == 0 {
		ojsRef := doc.OJSRef()

		checker := v.notices
		if docType == DocTypeAward {
			checker = v.awards
		}
		exists, err := checker.Exists(ctx, ojsRef)
		if err != nil {
			return false, nil, fmt.Errorf("check %s ref %q: %w", typeName(docType), ojsRef, err)
		}
		if exists {
			violations = append(violations,
				fmt.Sprintf("%s ref %q already exists in database.", typeName(docType), ojsRef))
		}

		if docType == DocTypeAward {
			refOJS := doc.RefNoticeOJS()
			noticeExists, err := v.notices.Exists(ctx, refOJS)
			if err != nil {
				return false, nil, fmt.Errorf("check Contract Notice ref %q: %w", refOJS, err)
			}
			if !noticeExists {
				violations = append(violations,
					fmt.Sprintf("Contract Notice ref %q does not exist in database.", refOJS))
			}
		}
	}

	return len(violations) == 0, violations, nil
}

func (v *Validator) schemaSupported(version string) bool {
	for _, s := range v.rules.SupportedSchemas {
		if s == version {
			return true
		}
	}
	return false
}

func typeName(t DocType) string {
	if t == DocTypeAward {
		return "Contract Award Notice"
	}
	return "Contract Notice"
}
