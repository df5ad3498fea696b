// Package config loads the importer settings from a YAML file.
//
// Every field is optional; missing values take the defaults returned by
// Default. A typical file:
//
//	strategy: tier
//	strict: true
//	unmatched_marker: ABI
//	roster:
//	  header: [Numéro, Nom, Prénom, Note]
//	  columns: {id: 0, last_name: 1, first_name: 2, score: 3}
package config
