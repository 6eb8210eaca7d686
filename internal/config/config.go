package config

import (
	"github.com/spf13/viper"
)

// Config represents the analyzer configuration
type Config struct {
	// Scan settings
	Path            string   `mapstructure:"path"`             // project root to analyze
	MaxSize         string   `mapstructure:"max_size"`         // maximum file size to accept (e.g. "1M", "1048576")
	Extensions      []string `mapstructure:"extensions"`       // file extensions to accept (without dot)
	Exclude         []string `mapstructure:"exclude"`          // directory names to exclude
	ExcludeSuffixes []string `mapstructure:"exclude_suffixes"` // path suffixes to exclude
	SpecialFiles    []string `mapstructure:"special_files"`    // well-known filenames accepted regardless of extension
	UseGitignore    bool     `mapstructure:"use_gitignore"`    // honor .gitignore / .pkaignore from the scan root

	// Output settings
	OutputDir string `mapstructure:"output_dir"` // flattened files + documentation destination
	RulesFile string `mapstructure:"rules_file"` // optional YAML file with extra filter rules
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("max_size", "1M")
	v.SetDefault("output_dir", "./project-knowledge")
	v.SetDefault("use_gitignore", true)
	v.SetDefault("extensions", DefaultExtensions())
	v.SetDefault("exclude", DefaultExclude())
	v.SetDefault("exclude_suffixes", DefaultExcludeSuffixes())
	v.SetDefault("special_files", DefaultSpecialFiles())

	// Read environment variables
	v.SetEnvPrefix("PKA")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultExtensions returns the default accepted extensions (without dot)
func DefaultExtensions() []string {
	return []string{
		"js", "mjs", "cjs", "ts", "jsx", "tsx",
		"json", "yml", "yaml", "toml", "ini", "env",
		"md", "markdown", "txt",
		"html", "htm", "xml", "svg",
		"css", "scss", "sass", "less",
		"go", "py", "rb", "php", "java", "c", "h", "cpp", "hpp",
		"sh", "bash", "sql", "vue", "svelte", "graphql", "gql", "proto",
	}
}

// DefaultExclude returns the default excluded directory names
func DefaultExclude() []string {
	return []string{
		".git", ".svn", ".hg",
		"node_modules", "vendor", "bower_components",
		"dist", "build", "out", "coverage",
		".cache", ".next", ".nuxt", "__pycache__",
		".idea", ".vscode", ".DS_Store",
		"tmp", "temp", "logs",
	}
}

// DefaultExcludeSuffixes returns the default excluded path suffixes
func DefaultExcludeSuffixes() []string {
	return []string{".log", ".tmp", ".temp", ".bak", ".swp", ".min.js", ".map"}
}

// DefaultSpecialFiles returns well-known filenames accepted regardless of extension
func DefaultSpecialFiles() []string {
	return []string{
		"package.json", "package-lock.json", "yarn.lock", "pnpm-lock.yaml",
		"go.mod", "go.sum", "Makefile", "Dockerfile",
		"docker-compose.yml", "docker-compose.yaml",
		"README", "README.md", "LICENSE", "LICENSE.md",
		"CHANGELOG", "CHANGELOG.md", "CONTRIBUTING.md",
		".gitignore", ".gitattributes", ".editorconfig", ".env.example", ".nvmrc",
		".babelrc", ".eslintrc", ".eslintrc.json", ".prettierrc",
		"tsconfig.json", "jsconfig.json",
		"webpack.config.js", "vite.config.js", "vite.config.ts",
		"rollup.config.js", "babel.config.js",
		"jest.config.js", "vitest.config.ts",
		"next.config.js", "nuxt.config.js",
		"tailwind.config.js", "postcss.config.js",
		"composer.json", "requirements.txt", "pyproject.toml", "setup.py",
		"Cargo.toml", "Gemfile", "Rakefile", "Procfile",
	}
}
