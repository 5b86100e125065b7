package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"barber-agenda/cmd/bootstrap"
	"barber-agenda/internal/domain"
	"barber-agenda/internal/schedule"
	"barber-agenda/internal/store"
)

func cmdAgenda(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	date := fs.String("date", "", "day to show, YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	day := *date
	if day == "" {
		day = app.Clock.Now().Format(domain.DateLayout)
	}
	if !domain.ValidDate(day) {
		return fmt.Errorf("invalid date %q", day)
	}

	settings := app.Store.Settings()
	appointments := app.Store.AppointmentsByDate(day)

	if dups := schedule.DuplicateTimes(appointments); len(dups) > 0 {
		app.Logger.Warn("multiple appointments share a slot", "date", day, "times", dups)
	}

	slots := schedule.GenerateSlots(settings.WorkStartTime, settings.WorkEndTime, schedule.DefaultSlotMinutes)
	stats := schedule.Stats(appointments)

	fmt.Printf("%s — %s\n", settings.ShopName, day)
	fmt.Printf("%d appointments, %d done, %s expected\n\n", stats.Total, stats.Completed, stats.Revenue.FormatBRL())

	for _, slot := range schedule.BuildDay(slots, appointments) {
		if !slot.Occupied() {
			fmt.Printf("  %s  livre\n", slot.Time)
			continue
		}
		apt := slot.Appointment
		name := "cliente removido"
		if c, err := app.Store.ClientByID(apt.ClientID); err == nil {
			name = c.Name
		}
		fmt.Printf("  %s  %-24s %s  [%s/%s]\n",
			slot.Time, name, apt.Price.FormatBRL(), apt.Status, apt.PaymentStatus)
	}
	return nil
}

func cmdBook(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	client := fs.String("client", "", "client id")
	services := fs.String("services", "", "comma-separated service ids")
	date := fs.String("date", "", "YYYY-MM-DD")
	timeFlag := fs.String("time", "", "HH:mm")
	price := fs.Float64("price", -1, "price override (default: catalog sum)")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var serviceIDs []string
	if *services != "" {
		serviceIDs = strings.Split(*services, ",")
	}

	var amount domain.Money
	if *price >= 0 {
		amount = domain.MoneyFromAmount(*price)
	} else {
		for _, id := range serviceIDs {
			svc, err := app.Store.ServiceByID(id)
			if err != nil {
				return err
			}
			amount = amount.Add(svc.Price)
		}
	}

	apt, err := app.Store.AddAppointment(store.NewAppointment{
		ClientID:   *client,
		ServiceIDs: serviceIDs,
		Date:       *date,
		Time:       *timeFlag,
		Price:      amount,
		Notes:      *notes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("booked %s at %s %s for %s\n", apt.ID, apt.Date, apt.Time, apt.Price.FormatBRL())
	return nil
}

func cmdCancel(app *bootstrap.App, args []string) error {
	id, err := idArg("cancel", args)
	if err != nil {
		return err
	}
	return app.Store.CancelAppointment(id)
}

func cmdComplete(app *bootstrap.App, args []string) error {
	id, err := idArg("complete", args)
	if err != nil {
		return err
	}
	return app.Store.CompleteAppointment(id)
}

func cmdPay(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	id := fs.String("id", "", "appointment id")
	method := fs.String("method", string(domain.MethodCash), "CASH, PIX, CARD or OTHER")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	return app.Store.SetPaymentStatus(*id, domain.PaymentPaid, domain.PaymentMethod(*method))
}

func cmdClients(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("clients", flag.ContinueOnError)
	add := fs.Bool("add", false, "add a client")
	rm := fs.String("rm", "", "delete a client by id")
	name := fs.String("name", "", "client name")
	phone := fs.String("phone", "", "client phone")
	notes := fs.String("notes", "", "client notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *add:
		c, err := app.Store.AddClient(store.NewClient{Name: *name, Phone: *phone, Notes: *notes})
		if err != nil {
			return err
		}
		fmt.Printf("added client %s (%s)\n", c.Name, c.ID)
	case *rm != "":
		return app.Store.DeleteClient(*rm)
	default:
		for _, c := range app.Store.Clients() {
			fmt.Printf("%s  %-24s %s\n", c.ID, c.Name, c.Phone)
		}
	}
	return nil
}

func cmdServices(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("services", flag.ContinueOnError)
	add := fs.Bool("add", false, "add a service")
	rm := fs.String("rm", "", "delete a service by id")
	name := fs.String("name", "", "service name")
	minutes := fs.Int("minutes", schedule.DefaultSlotMinutes, "duration in minutes")
	price := fs.Float64("price", 0, "price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *add:
		svc, err := app.Store.AddService(store.NewService{
			Name:            *name,
			DurationMinutes: *minutes,
			Price:           domain.MoneyFromAmount(*price),
		})
		if err != nil {
			return err
		}
		fmt.Printf("added service %s (%s)\n", svc.Name, svc.ID)
	case *rm != "":
		return app.Store.DeleteService(*rm)
	default:
		for _, svc := range app.Store.Services() {
			fmt.Printf("%s  %-24s %3dmin  %s\n", svc.ID, svc.Name, svc.DurationMinutes, svc.Price.FormatBRL())
		}
	}
	return nil
}

func cmdFinance(app *bootstrap.App) error {
	s := schedule.Summarize(app.Store.Appointments())
	fmt.Printf("appointments: %d\n", s.Count)
	fmt.Printf("total:        %s\n", s.TotalRevenue.FormatBRL())
	fmt.Printf("paid:         %s\n", s.PaidRevenue.FormatBRL())
	fmt.Printf("pending:      %s\n", s.PendingRevenue.FormatBRL())
	fmt.Printf("avg ticket:   %s\n", s.AverageTicket.FormatBRL())
	return nil
}

func cmdSettings(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	name := fs.String("name", "", "shop name")
	phone := fs.String("phone", "", "shop phone")
	start := fs.String("start", "", "work start, HH:mm")
	end := fs.String("end", "", "work end, HH:mm")
	days := fs.String("days", "", "work days 0-6 comma-separated, empty = every day")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var p store.SettingsPatch
	changed := false
	if *name != "" {
		p.ShopName, changed = name, true
	}
	if *phone != "" {
		p.ShopPhone, changed = phone, true
	}
	if *start != "" {
		p.WorkStartTime, changed = start, true
	}
	if *end != "" {
		p.WorkEndTime, changed = end, true
	}
	if *days != "" {
		workDays, err := parseDays(*days)
		if err != nil {
			return err
		}
		p.WorkDays, changed = &workDays, true
	}

	if changed {
		if err := app.Store.UpdateSettings(p); err != nil {
			return err
		}
	}

	s := app.Store.Settings()
	fmt.Printf("shop:  %s (%s)\n", s.ShopName, s.ShopPhone)
	fmt.Printf("hours: %s–%s\n", s.WorkStartTime, s.WorkEndTime)
	if len(s.WorkDays) == 0 {
		fmt.Println("days:  every day")
	} else {
		fmt.Printf("days:  %v\n", s.WorkDays)
	}
	return nil
}

func cmdExport(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := app.Store.ExportJSON()
	if err != nil {
		return err
	}
	if *out == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(*out, data, 0o644)
}

func cmdImport(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	in := fs.String("i", "", "snapshot file")
	force := fs.Bool("force", false, "confirm replacing all current data")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-i is required")
	}
	if !*force {
		return fmt.Errorf("import replaces all current data; re-run with -force")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	return app.Store.ImportJSON(data)
}

func cmdReset(app *bootstrap.App, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	force := fs.Bool("force", false, "confirm wiping all data")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*force {
		return fmt.Errorf("reset wipes all clients, services and appointments; re-run with -force")
	}
	return app.Store.ResetAll()
}

func idArg(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	id := fs.String("id", "", "appointment id")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if *id == "" {
		return "", fmt.Errorf("-id is required")
	}
	return *id, nil
}

func parseDays(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid work day %q", p)
		}
		days = append(days, d)
	}
	return days, nil
}
