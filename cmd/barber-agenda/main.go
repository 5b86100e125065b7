// barber-agenda is the offline agenda for a single barbershop: clients,
// service catalog, bookings and daily finances, all kept in a local database
// file. No server, no accounts; the data never leaves the machine.
package main

import (
	"fmt"
	"os"

	"barber-agenda/cmd/bootstrap"
	"barber-agenda/internal/pkg/config"
)

const usage = `usage: barber-agenda <command> [flags]

agenda commands
  agenda      show the slot grid for a day (-date YYYY-MM-DD, default today)
  book        book an appointment (-client -services -date -time [-price] [-notes])
  cancel      cancel an appointment (-id)
  complete    mark an appointment done (-id)
  pay         mark an appointment paid (-id [-method CASH|PIX|CARD|OTHER])

records
  clients     list clients; add with -add -name NAME [-phone] [-notes]
  services    list the catalog; add with -add -name NAME -minutes N -price N
  finance     revenue summary across all appointments
  settings    show shop settings; change with -name/-phone/-start/-end/-days

backup
  export      write a backup snapshot (-o FILE, default stdout)
  import      replace all data from a snapshot (-i FILE -force)
  reset       wipe everything back to factory state (-force)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "barber-agenda: %v\n", err)
		os.Exit(1)
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "barber-agenda: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	if err := dispatch(app, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "barber-agenda: %v\n", err)
		os.Exit(1)
	}
}

func dispatch(app *bootstrap.App, command string, args []string) error {
	switch command {
	case "agenda":
		return cmdAgenda(app, args)
	case "book":
		return cmdBook(app, args)
	case "cancel":
		return cmdCancel(app, args)
	case "complete":
		return cmdComplete(app, args)
	case "pay":
		return cmdPay(app, args)
	case "clients":
		return cmdClients(app, args)
	case "services":
		return cmdServices(app, args)
	case "finance":
		return cmdFinance(app)
	case "settings":
		return cmdSettings(app, args)
	case "export":
		return cmdExport(app, args)
	case "import":
		return cmdImport(app, args)
	case "reset":
		return cmdReset(app, args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
