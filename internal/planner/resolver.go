package planner

// Resolve picks the best-matching configuration for the given profile
// attributes via cascading fallback, first match wins:
//
//  1. exact match on (goal, experience, venue)
//  2. match on (goal, experience)
//  3. match on goal alone
//  4. match on experience alone
//  5. the first configuration in table order
//
// It fails with ErrNoConfiguration only when the table is empty, so a
// non-empty table makes resolution total over any input triple.
func Resolve(table []Config, goal, experience, venue string) (Config, error) {
	if len(table) == 0 {
		return Config{}, ErrNoConfiguration
	}

	for _, cfg := range table {
		if cfg.Goal == goal && cfg.Experience == experience && cfg.Venue == venue {
			return cfg, nil
		}
	}
	for _, cfg := range table {
		if cfg.Goal == goal && cfg.Experience == experience {
			return cfg, nil
		}
	}
	for _, cfg := range table {
		if cfg.Goal == goal {
			return cfg, nil
		}
	}
	for _, cfg := range table {
		if cfg.Experience == experience {
			return cfg, nil
		}
	}
	return table[0], nil
}
