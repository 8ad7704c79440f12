// Package domain contains the core model for agegroup: records, datasets, the
// age group classifier and the interval binning it is compared against.
//
// The domain is storage- and presentation-agnostic: it does not depend on YAML,
// CSV, dataframes or the filesystem. Infra/adapters map into/from these types.
package domain
