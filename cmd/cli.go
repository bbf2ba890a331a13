package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/viant/typemirror"
	"github.com/viant/typemirror/config"
	"github.com/viant/typemirror/logger"
	"github.com/viant/typemirror/model"
	"github.com/viant/typemirror/resolver"
)

// New runs command line with supplied arguments
func New(version string, args []string) error {
	options, err := buildOptions(args)
	if err != nil {
		return err
	}
	if options.Version {
		fmt.Printf("typemirror: version: %v\n", version)
		return nil
	}
	return Run(context.Background(), options, os.Stdout)
}

// Run resolves options type expression and writes resolved node as JSON
func Run(ctx context.Context, options *Options, writer io.Writer) error {
	options.Init()
	if options.Type == "" {
		return errors.New("type expression was empty, use -t")
	}
	cfg, err := loadConfig(ctx, options)
	if err != nil {
		return err
	}
	opts := []typemirror.Option{typemirror.WithConfig(cfg)}
	if options.Debug {
		opts = append(opts, typemirror.WithLogger(logger.Debug()))
	}
	service, err := typemirror.New(ctx, opts...)
	if err != nil {
		return err
	}
	node, err := resolve(service, options)
	if err != nil {
		return err
	}
	data, err := model.Marshal(node)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %v", node)
	}
	_, err = fmt.Fprintln(writer, string(data))
	return err
}

func resolve(service *typemirror.Service, options *Options) (model.Node, error) {
	var resolveOptions []resolver.ResolveOption
	if options.NoTypeAnnotations {
		resolveOptions = append(resolveOptions, resolver.WithTypeAnnotations(false))
	}
	if options.Member != "" {
		if options.Anchor != "" || len(options.Bindings) > 0 {
			return nil, errors.New("member (-m) can not be combined with anchor (-a) or bindings (-b), use a parameterized owner type instead")
		}
		return service.ResolveMember(options.Type, options.Member, resolveOptions...)
	}
	bindings, err := service.Bindings(options.Bindings)
	if err != nil {
		return nil, err
	}
	return service.ResolveExpr(options.Anchor, options.Type, bindings, resolveOptions...)
}

func loadConfig(ctx context.Context, options *Options) (*config.Config, error) {
	cfg := config.Default()
	if options.ConfigURL != "" {
		var err error
		if cfg, err = config.NewFromURL(ctx, nil, options.ConfigURL); err != nil {
			return nil, err
		}
	}
	if options.CatalogURL != "" {
		cfg.CatalogURL = options.CatalogURL
	}
	if options.RootType != "" {
		cfg.RootType = options.RootType
	}
	if options.NoTypeAnnotations {
		cfg.ExcludeTypeAnnotations = true
	}
	if options.Debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func buildOptions(args []string) (*Options, error) {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return nil, err
	}
	return options, nil
}
