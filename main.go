package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/jsprime/prime-cms/config"
	"github.com/jsprime/prime-cms/database"
	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web"
	"github.com/jsprime/prime-cms/web/service"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close database err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

// resetAdmin seeds or replaces the admin credentials out-of-band.
func resetAdmin(username string, password string) {
	if username == "" || password == "" {
		fmt.Println("both --username and --password are required")
		return
	}
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	userService := service.UserService{}
	if err := userService.ResetCredentials(username, password); err != nil {
		fmt.Println("set username and password failed:", err)
		return
	}
	fmt.Println("set username and password success")
}

func showAdmin() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	userService := service.UserService{}
	user, err := userService.GetFirstUser()
	if err != nil {
		fmt.Println("get current user failed:", err)
		return
	}
	fmt.Println("current admin username:", user.Username)
	fmt.Println("port:", config.GetPort())
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: config.GetName(),
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var username, password string
	var show bool
	var adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Show or reset the admin account",
		Run: func(cmd *cobra.Command, args []string) {
			if show {
				showAdmin()
				return
			}
			resetAdmin(username, password)
		},
	}
	adminCmd.Flags().StringVar(&username, "username", "", "new admin username")
	adminCmd.Flags().StringVar(&password, "password", "", "new admin password")
	adminCmd.Flags().BoolVar(&show, "show", false, "show current admin info")

	rootCmd.AddCommand(runCmd, adminCmd)

	if len(os.Args) == 1 {
		runWebServer()
		return
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
