package app

import (
	"os"
	"os/signal"
)

// Run services the key tap until the quit action or a termination signal.
// It must be called from the goroutine that created the Application.
func (app *Application) Run() error {
	var sigCh chan os.Signal
	if sigs := quitSignals(); len(sigs) > 0 {
		sigCh = make(chan os.Signal, 1)
		signal.Notify(sigCh, sigs...)
		defer signal.Stop(sigCh)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-sigCh:
			app.logger.WithField("signal", sig.String()).Info("stopping")
			app.tap.Stop()
		case <-done:
		}
	}()

	return app.tap.Run()
}
