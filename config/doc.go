// Package config loads relgraph settings.
//
// Precedence, lowest first: Default(), the YAML file passed to Load,
// RELGRAPH_* environment variables. The merged result is validated with
// go-playground/validator struct tags.
//
//	analysis:
//	  workers: 0          # two-hop parallelism, 0 = GOMAXPROCS
//	  invert_labels: false
//	graph:
//	  drop_invalid: false # drop self-loops and bad relations instead of failing
//	log:
//	  level: info         # debug | info | warn | error
//	  format: text        # text | json
//	server:
//	  addr: ":8080"
//	  max_body_bytes: 4194304
package config
