package app

import (
	"context"
	"fmt"
	"io"

	"github.com/nulzo/factory-method/internal/config"
	"github.com/nulzo/factory-method/internal/core/domain"
	"github.com/nulzo/factory-method/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const tracerName = "github.com/nulzo/factory-method/internal/app"

const clientPreamble = "Client: I'm not aware of the creator's class,but it still works.\n"

// CreatorFactory builds creators from their registered names.
type CreatorFactory interface {
	CreateCreators(names []string) ([]ports.Creator, error)
}

// ClientCode works with whatever creator it is given through the Creator
// interface and writes the result of its business logic to w.
func ClientCode(w io.Writer, creator ports.Creator) error {
	_, err := fmt.Fprintln(w, clientPreamble+creator.SomeOperation())
	return err
}

type App struct {
	out     io.Writer
	factory CreatorFactory
	logger  *zap.Logger
}

func New(out io.Writer, factory CreatorFactory, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		out:     out,
		factory: factory,
		logger:  logger,
	}
}

type launch struct {
	name    string
	creator ports.Creator
}

// Run launches the client once per creator name, announcing each launch and
// separating launches with a blank line. Every name is resolved before any
// output is written.
func (a *App) Run(ctx context.Context, names []string) error {
	creators, err := a.factory.CreateCreators(names)
	if err != nil {
		return domain.NotFoundError("cannot resolve launches", err)
	}

	launches := make([]launch, len(names))
	for i, name := range names {
		launches[i] = launch{name: name, creator: creators[i]}
	}

	tracer := otel.Tracer(tracerName)

	for i, l := range launches {
		if i > 0 {
			if _, err := fmt.Fprintln(a.out); err != nil {
				return domain.InternalError("failed to write output", err)
			}
		}

		_, span := tracer.Start(ctx, "app.launch")
		span.SetAttributes(attribute.String("creator", l.name))

		a.logger.Debug("launching client", zap.String("creator", l.name))

		err := a.announce(l.name)
		if err == nil {
			err = ClientCode(a.out, l.creator)
		}
		span.End()
		if err != nil {
			return domain.InternalError("failed to write output", err)
		}
	}

	a.logger.Info("demo finished", zap.Int("launches", len(launches)))
	return nil
}

// Main runs the default demo: ConcreteCreator1, then ConcreteCreator2.
func (a *App) Main(ctx context.Context) error {
	return a.Run(ctx, config.DefaultLaunch)
}

// announce names the concrete creator for the reader; ClientCode itself
// only ever sees the interface.
func (a *App) announce(name string) error {
	_, err := fmt.Fprintf(a.out, "App: Launched with the %s.\n", name)
	return err
}
