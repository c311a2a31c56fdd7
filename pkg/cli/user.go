package cli

import (
	"fmt"

	"github.com/qazaqnlp/qural/pkg/auth"
	"github.com/spf13/cobra"
)

func init() {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage annotator accounts",
	}

	userCmd.AddCommand(&cobra.Command{
		Use:   "create <username> <password>",
		Short: "Create an annotator account",
		Args:  cobra.ExactArgs(2),
		Run:   runUserCreate,
	})

	userCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List account names",
		Args:  cobra.NoArgs,
		Run:   runUserList,
	})

	userCmd.AddCommand(&cobra.Command{
		Use:   "passwd <username> <password>",
		Short: "Set an account's password",
		Args:  cobra.ExactArgs(2),
		Run:   runUserPasswd,
	})

	RootCmd.AddCommand(userCmd)
}

func newAuthService() (*auth.Service, func(), error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return auth.NewService(store, newLogger()), func() { store.Close() }, nil
}

func runUserCreate(cmd *cobra.Command, args []string) {
	svc, closeStore, err := newAuthService()
	if err != nil {
		exitErr("open database", err)
	}
	defer closeStore()

	if err := svc.CreateAccount(cmd.Context(), args[0], args[1]); err != nil {
		exitErr("create account", err)
	}
	fmt.Printf("created %s\n", args[0])
}

func runUserList(cmd *cobra.Command, args []string) {
	svc, closeStore, err := newAuthService()
	if err != nil {
		exitErr("open database", err)
	}
	defer closeStore()

	accounts, err := svc.ListAccounts(cmd.Context())
	if err != nil {
		exitErr("list accounts", err)
	}
	for _, account := range accounts {
		fmt.Println(account)
	}
}

func runUserPasswd(cmd *cobra.Command, args []string) {
	svc, closeStore, err := newAuthService()
	if err != nil {
		exitErr("open database", err)
	}
	defer closeStore()

	if err := svc.ChangePassword(cmd.Context(), args[0], args[1]); err != nil {
		exitErr("change password", err)
	}
	fmt.Printf("password updated for %s\n", args[0])
}
