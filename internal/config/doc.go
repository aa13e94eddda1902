// Package config provides local-first configuration for typeahead.
//
// Settings live in the working directory's .typeahead/ folder:
//
//	.typeahead/
//	├── config.json        # Settings (committed to git)
//	├── .gitignore         # Ignores the catalog database and logs
//	├── catalog.db         # Default option catalog
//	└── typeahead.log      # Rotated log file
//
// config.json is a flat object:
//
//	{
//	  "theme": "ember",
//	  "debug": false,
//	  "debounce_ms": 700,
//	  "placeholder": "Search produce...",
//	  "catalog_path": ".typeahead/catalog.db",
//	  "max_rows": 8,
//	  "search_limit": 20,
//	  "searches_per_second": 4,
//	  "log_file": ".typeahead/typeahead.log"
//	}
//
// String values may reference environment variables with $VAR or ${VAR}:
//
//	{
//	  "catalog_path": "${HOME}/produce.db"
//	}
//
// Example usage:
//
//	manager := config.NewManager(".")
//	if err := manager.Load(); err != nil {
//		return err
//	}
//	cfg := manager.Get()
//	fmt.Println("debounce:", cfg.Debounce())
//
//	// Update a setting and persist it
//	manager.Set("theme", "dark")
package config
