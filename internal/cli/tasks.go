package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Zaugg-M/Cloud-ToDo/internal/models"
	"github.com/Zaugg-M/Cloud-ToDo/internal/services"
)

// AddTask prompts for a title and description and creates the task.
func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.taskService.Add(ctx, a.session, title, description); err != nil {
		a.printError(err)
		return err
	}

	printlnFn("Task added.")
	return nil
}

// ListTasks prints all of the session's tasks, oldest first.
func (a *App) ListTasks(ctx context.Context) error {
	list, err := a.taskService.List(ctx, a.session)
	if err != nil {
		a.printError(err)
		return err
	}

	if len(list) == 0 {
		printlnFn("No tasks yet.")
		return nil
	}

	for i, task := range list {
		printTask(i, task)
	}
	return nil
}

// UpdateTask lets the user pick a task and overwrite its title and/or
// description. Blank input keeps the current value.
func (a *App) UpdateTask(ctx context.Context) error {
	task, err := a.chooseTask(ctx, "update")
	if err != nil || task == nil {
		return err
	}

	printlnFn(fmt.Sprintf("Updating %q", task.Title))
	newTitle, err := getSimpleText(a.reader, "New title (leave blank to keep current)", os.Stdout)
	if err != nil {
		return err
	}
	newDescription, err := getSimpleText(a.reader, "New description (leave blank to keep current)", os.Stdout)
	if err != nil {
		return err
	}

	upd := services.TaskUpdate{}
	if newTitle != "" {
		upd.Title = &newTitle
	}
	if newDescription != "" {
		upd.Description = &newDescription
	}
	if upd.Title == nil && upd.Description == nil {
		printlnFn("No changes made.")
		return nil
	}

	if err := a.taskService.Update(ctx, a.session, task.ID, upd); err != nil {
		a.printError(err)
		return err
	}

	printlnFn("Task updated.")
	return nil
}

// DeleteTask lets the user pick a task and removes it after confirmation.
func (a *App) DeleteTask(ctx context.Context) error {
	task, err := a.chooseTask(ctx, "delete")
	if err != nil || task == nil {
		return err
	}

	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete %q?", task.Title), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Deletion canceled.")
		return nil
	}

	if err := a.taskService.Delete(ctx, a.session, task.ID); err != nil {
		a.printError(err)
		return err
	}

	printlnFn("Task deleted.")
	return nil
}

// ToggleTask lets the user pick a task and flips its completion state.
func (a *App) ToggleTask(ctx context.Context) error {
	task, err := a.chooseTask(ctx, "toggle")
	if err != nil || task == nil {
		return err
	}

	if err := a.taskService.ToggleComplete(ctx, a.session, task.ID); err != nil {
		a.printError(err)
		return err
	}

	state := "Done"
	if task.Completed {
		state = "Not done"
	}
	printlnFn(fmt.Sprintf("Task %q marked %s.", task.Title, state))
	return nil
}

// chooseTask lists the session's tasks and prompts for a 1-based number.
// It returns (nil, nil) when there is nothing to choose or the input is not a
// valid number; both cases have already been reported to the user.
func (a *App) chooseTask(ctx context.Context, verb string) (*models.Task, error) {
	list, err := a.taskService.List(ctx, a.session)
	if err != nil {
		a.printError(err)
		return nil, err
	}
	if len(list) == 0 {
		printlnFn("No tasks to " + verb + ".")
		return nil, nil
	}

	printlnFn("Select task number to " + verb + ":")
	for i, task := range list {
		printlnFn(fmt.Sprintf("%d) %s", i+1, task))
	}

	input, err := getSimpleText(a.reader, "Task number", os.Stdout)
	if err != nil {
		return nil, err
	}
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(list) {
		printlnFn("Invalid task number.")
		return nil, nil
	}
	return list[idx-1], nil
}

func printTask(index int, task *models.Task) {
	printlnFn(fmt.Sprintf("%d) %s", index+1, task))
	printlnFn("     Description: " + task.Description)
	printlnFn("     Created at: " + formatCreatedAt(task.CreatedAt))
}

// formatCreatedAt tolerates the zero value a server timestamp reads as until
// the write is committed.
func formatCreatedAt(ts time.Time) string {
	if ts.IsZero() {
		return "<pending>"
	}
	return ts.Local().Format("2006-01-02 15:04:05")
}
