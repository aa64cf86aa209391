package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"salimas-planner/internal/category"
	"salimas-planner/internal/config"
	"salimas-planner/internal/mealplan"
	"salimas-planner/internal/model"
	"salimas-planner/internal/recipe"
	"salimas-planner/internal/remote"
	"salimas-planner/internal/shopping"
	"salimas-planner/internal/snapshot"
	"salimas-planner/internal/storage"
	"salimas-planner/internal/suggest"
)

// app bundles everything the subcommands work with.
type app struct {
	cfg       *config.Config
	client    remote.Client
	list      *shopping.Store
	grid      *mealplan.Store
	selection *recipe.Selection
	snapshots *snapshot.Service
	suggester *suggest.Provider
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	docs, err := storage.NewDocuments(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	client := remote.NewClient(cfg)
	list := shopping.NewStore(client)
	grid := mealplan.NewStore(docs)
	selection := recipe.NewSelection(docs)

	a := &app{
		cfg:       cfg,
		client:    client,
		list:      list,
		grid:      grid,
		selection: selection,
		snapshots: snapshot.NewService(client, list, grid, selection, cfg.StartDay),
		suggester: suggest.NewProvider(client),
	}

	ctx := context.Background()
	args := os.Args[2:]

	switch os.Args[1] {
	case "list":
		err = a.cmdList(ctx)
	case "add":
		err = a.cmdAdd(ctx, args)
	case "suggest":
		err = a.cmdSuggest(ctx, args)
	case "cross":
		err = a.cmdCross(ctx, args)
	case "amount":
		err = a.cmdAmount(ctx, args)
	case "remove":
		err = a.cmdRemove(ctx, args)
	case "clear":
		err = a.cmdClear(ctx, args)
	case "export":
		err = a.cmdExport(ctx)
	case "grid":
		err = a.cmdGrid()
	case "set-meal":
		err = a.cmdSetMeal(args)
	case "clear-grid":
		err = a.grid.Clear()
	case "select":
		err = a.cmdSelect(args, true)
	case "deselect":
		err = a.cmdSelect(args, false)
	case "import":
		err = a.cmdImport(ctx)
	case "save":
		err = a.cmdSave(ctx)
	case "snapshots":
		err = a.cmdSnapshots(ctx)
	case "load":
		err = a.cmdLoad(ctx, args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func usage() {
	fmt.Println(`Usage: planner <command> [arguments]

Shopping list:
  list                     show the list grouped by category
  add <item> ...           add one or more items
  suggest <text>           show name suggestions
  cross <item>             toggle an item's crossed state
  amount <item> <amount>   set an item's amount
  remove <item>            delete an item
  clear [-yes]             empty the list (asks to re-run without -yes)
  export                   print the list as plain text

Meal grid:
  grid                     show the four-day meal grid
  set-meal -day D -slot S -meal M
  clear-grid               wipe the grid

Recipes:
  select <id>              select a recipe for the plan
  deselect <id>            drop a recipe from the plan
  import                   add selected recipes' ingredients to the list

Snapshots:
  save                     save the planner state to the server
  snapshots                list saved snapshots
  load -id N [-apply]      show or restore a snapshot`)
}

func (a *app) cmdList(ctx context.Context) error {
	if err := a.list.Reload(ctx); err != nil {
		return err
	}

	items := a.list.Items()
	if len(items) == 0 {
		fmt.Println("The shopping list is empty.")
		return nil
	}

	printGrouped(items, func(item model.Item) string {
		line := item.Name
		if item.Amount != "" {
			line += " (" + item.Amount + ")"
		}
		if item.Crossed {
			line += " [crossed]"
		}
		if a.list.Unsynced(item.ID) {
			line += " [unsynced]"
		}
		return line
	})
	return nil
}

func (a *app) cmdAdd(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("add needs at least one item name")
	}
	for _, name := range names {
		item, err := a.list.Add(ctx, name, category.Detect(name))
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", item.Name, item.Category)
	}
	return nil
}

func (a *app) cmdSuggest(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("suggest needs a query")
	}

	names, err := a.suggester.Suggest(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No suggestions.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func (a *app) findItem(ctx context.Context, args []string, command string) (*model.Item, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s needs an item name", command)
	}
	if err := a.list.Reload(ctx); err != nil {
		return nil, err
	}

	name := strings.Join(args, " ")
	item, ok := a.list.ItemByName(name)
	if !ok {
		return nil, fmt.Errorf("no item called %q on the list", name)
	}
	return item, nil
}

func (a *app) cmdCross(ctx context.Context, args []string) error {
	item, err := a.findItem(ctx, args, "cross")
	if err != nil {
		return err
	}

	crossed := !item.Crossed
	if err := a.list.Update(ctx, item.ID, model.ItemPatch{Crossed: &crossed}); err != nil {
		return err
	}
	if crossed {
		fmt.Printf("Crossed off %s\n", item.Name)
	} else {
		fmt.Printf("Uncrossed %s\n", item.Name)
	}
	return nil
}

func (a *app) cmdAmount(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("amount needs an item name and an amount")
	}

	amount := args[len(args)-1]
	item, err := a.findItem(ctx, args[:len(args)-1], "amount")
	if err != nil {
		return err
	}

	if err := a.list.Update(ctx, item.ID, model.ItemPatch{Amount: &amount}); err != nil {
		return err
	}
	fmt.Printf("Set %s to %s\n", item.Name, amount)
	return nil
}

func (a *app) cmdRemove(ctx context.Context, args []string) error {
	item, err := a.findItem(ctx, args, "remove")
	if err != nil {
		return err
	}

	if err := a.list.Remove(ctx, item.ID); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", item.Name)
	return nil
}

func (a *app) cmdClear(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("clear", flag.ExitOnError)
	yes := flags.Bool("yes", false, "confirm clearing the whole list")
	flags.Parse(args)

	if !*yes {
		fmt.Println("This empties the whole shopping list. Re-run with -yes to confirm.")
		return nil
	}

	if err := a.list.Clear(ctx); err != nil {
		return err
	}
	fmt.Println("Shopping list cleared.")
	return nil
}

func (a *app) cmdExport(ctx context.Context) error {
	if err := a.list.Reload(ctx); err != nil {
		return err
	}

	printGrouped(a.list.Items(), func(item model.Item) string {
		if item.Amount != "" {
			return item.Name + " (" + item.Amount + ")"
		}
		return item.Name
	})
	return nil
}

func (a *app) cmdGrid() error {
	g, err := a.grid.Grid()
	if err != nil {
		return err
	}

	for _, day := range mealplan.Days(a.cfg.StartDay) {
		plan := g[day]
		fmt.Printf("%s:\n  lunch:  %s\n  dinner: %s\n", day, orDash(plan.Lunch), orDash(plan.Dinner))
	}
	return nil
}

func (a *app) cmdSetMeal(args []string) error {
	flags := flag.NewFlagSet("set-meal", flag.ExitOnError)
	day := flags.String("day", "", "day name, e.g. Monday")
	slot := flags.String("slot", mealplan.SlotDinner, "lunch or dinner")
	meal := flags.String("meal", "", "meal text (empty clears the slot)")
	flags.Parse(args)

	if *day == "" {
		return fmt.Errorf("set-meal needs -day")
	}
	return a.grid.Set(*day, *slot, *meal)
}

func (a *app) cmdSelect(args []string, selected bool) error {
	if len(args) == 0 {
		return fmt.Errorf("need a recipe id")
	}
	if selected {
		return a.selection.Add(args[0])
	}
	return a.selection.Remove(args[0])
}

func (a *app) cmdImport(ctx context.Context) error {
	ids, err := a.selection.IDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("No recipes selected.")
		return nil
	}

	meals, err := a.client.SelectedMeals(ctx, ids)
	if err != nil {
		return err
	}

	added, err := recipe.ImportChecked(ctx, meals, a.selection, a.list)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d ingredients from %d recipes.\n", added, len(meals))
	return nil
}

func (a *app) cmdSave(ctx context.Context) error {
	if err := a.list.Reload(ctx); err != nil {
		return err
	}

	result, err := a.snapshots.Save(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", result.Name)
	return nil
}

func (a *app) cmdSnapshots(ctx context.Context) error {
	summaries, err := a.snapshots.List(ctx)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No snapshots saved.")
		return nil
	}
	for _, s := range summaries {
		fmt.Printf("%4d  %-24s %s\n", s.ID, s.Name, s.Created)
	}
	return nil
}

func (a *app) cmdLoad(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("load", flag.ExitOnError)
	id := flags.Int64("id", 0, "snapshot id")
	apply := flags.Bool("apply", false, "restore the snapshot instead of showing it")
	flags.Parse(args)

	if *id == 0 {
		return fmt.Errorf("load needs -id")
	}

	snap, err := a.snapshots.Load(ctx, *id)
	if err != nil {
		return err
	}

	if !*apply {
		fmt.Printf("%s (saved %s)\n", snap.Name, snap.Timestamp)
		fmt.Printf("  %d items, %d recipes\n", len(snap.ShoppingList), len(snap.Recipes))
		return nil
	}

	if err := a.snapshots.Apply(ctx, *snap); err != nil {
		return err
	}
	fmt.Printf("Restored %s\n", snap.Name)
	return nil
}

func printGrouped(items []model.Item, render func(model.Item) string) {
	grouped := map[category.Category][]model.Item{}
	for _, item := range items {
		cat := category.OrDefault(item.Category)
		grouped[cat] = append(grouped[cat], item)
	}

	for _, cat := range category.All {
		group := grouped[cat]
		if len(group) == 0 {
			continue
		}
		fmt.Printf("%s:\n", cat)
		for _, item := range group {
			fmt.Printf("  %s\n", render(item))
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
