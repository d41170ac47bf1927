package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/sean-nixon/scala-case-class-swagger-util/internal/config"
	"github.com/sean-nixon/scala-case-class-swagger-util/internal/gen"
	"github.com/sean-nixon/scala-case-class-swagger-util/internal/pg"
	"github.com/sean-nixon/scala-case-class-swagger-util/internal/scala"
	"github.com/sean-nixon/scala-case-class-swagger-util/internal/swagger"
)

const defaultConfigFile = "class2swagger.yaml"

type Settings struct {
	WorkingDir string

	// Config overrides the config file path. A relative path is
	// resolved against WorkingDir.
	Config string
}

func Run(s Settings) error {
	cfg, err := config.Read(configPath(s))
	if err != nil {
		return err
	}

	format, err := swagger.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	docs, failures, err := readDefinitions(s, *cfg)
	if err != nil {
		return err
	}

	db, err := migrate(s, cfg)
	if err != nil {
		return err
	}
	docs = append(docs, pg.Documents(db)...)

	if err := checkDuplicates(docs); err != nil {
		return err
	}

	if err := writeDocuments(s, *cfg, format, docs); err != nil {
		return err
	}

	if len(cfg.Package.Path) > 0 {
		if err := gen.GenerateModels(*cfg, s.WorkingDir, docs); err != nil {
			return err
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("failed to process %d class definition(s): %w", len(failures), errors.Join(failures...))
	}

	return nil
}

func configPath(s Settings) string {
	p := s.Config
	if len(p) == 0 {
		p = defaultConfigFile
	}

	if !filepath.IsAbs(p) {
		p = filepath.Join(s.WorkingDir, p)
	}

	return p
}

// readDefinitions parses all case class definitions in the files
// selected by `cfg.Definitions`. A definition that fails to parse
// doesn't abort the run: the failure is logged and reported once the
// rest of the batch has been processed.
func readDefinitions(s Settings, cfg config.Config) ([]*swagger.Document, []error, error) {
	docs := make([]*swagger.Document, 0)
	failures := make([]error, 0)

	for _, d := range cfg.Definitions {
		path := filepath.Join(s.WorkingDir, d.Path)

		files, err := filepath.Glob(path)
		if err != nil {
			return nil, nil, fmt.Errorf(`failed to resolve definition files using glob "%s": %w`, d.Path, err)
		}

		for _, f := range files {
			contents, err := os.ReadFile(f)
			if err != nil {
				return nil, nil, fmt.Errorf(`failed to read definition file "%s": %w`, f, err)
			}

			for _, raw := range scala.SplitClasses(string(contents)) {
				doc, err := scala.ParseClass(raw)
				if err != nil {
					logrus.WithError(err).Errorf(`failed to process a class definition in "%s"`, f)
					failures = append(failures, err)
					continue
				}

				logrus.Debugf(`resolved class "%s" with %d parameter(s)`, doc.Name, len(doc.Fields))
				docs = append(docs, doc)
			}
		}
	}

	return docs, failures, nil
}

func migrate(s Settings, cfg *config.Config) (*pg.DB, error) {
	db := pg.NewDB()

	for _, m := range cfg.Migrations {
		path := filepath.Join(s.WorkingDir, m.Path)

		files, err := filepath.Glob(path)
		if err != nil {
			return nil, fmt.Errorf(`failed to resolve migration files using glob "%s": %w`, m.Path, err)
		}

		for _, mf := range files {
			if err := pg.MigrateFile(db, mf); err != nil {
				return nil, err
			}

			logrus.Debugf(`applied migration "%s"`, mf)
		}
	}

	return db, nil
}

func checkDuplicates(docs []*swagger.Document) error {
	seen := make(map[string]bool, len(docs))

	for _, d := range docs {
		if seen[d.Name] {
			return fmt.Errorf(`duplicate definition "%s"`, d.Name)
		}

		seen[d.Name] = true
	}

	return nil
}

func writeDocuments(s Settings, cfg config.Config, format swagger.Format, docs []*swagger.Document) error {
	outDir := filepath.Join(s.WorkingDir, cfg.Output.Path)

	if err := os.MkdirAll(outDir, 0700); err != nil {
		return fmt.Errorf(`failed to create output directory "%s": %w`, outDir, err)
	}

	for _, d := range docs {
		if err := swagger.WriteFile(outDir, d, format); err != nil {
			return err
		}

		logrus.Infof(`wrote %s`, swagger.FileName(d, format))
	}

	return nil
}
