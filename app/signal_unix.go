//go:build !windows

package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

func interrupt(cancel <-chan struct{}, svc *service) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	for {
		select {
		case sig := <-c:
			switch sig {
			case syscall.SIGUSR1:
				svc.logStatus()
				continue
			default:
				return fmt.Errorf("received signal %s", sig)
			}
		case <-cancel:
			return errors.New("canceled")
		}
	}
}
