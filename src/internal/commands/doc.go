// Package commands implements the warninglists CLI subcommands.
//
// Each command implements the Runner interface:
//   - Init(): parse arguments and load configuration
//   - Run(): execute the command
//   - Name(): return the command name for routing
//
// # Available Commands
//
//   - lookup: print the lists containing each value
//   - lists: print every loaded list with compile statistics
//   - show: print the metadata of a single list
//   - update: download the dataset archive and extract the lists
//   - serve: run the HTTP API and reload lists when files change
//
// # Example Usage
//
//	cmd := commands.CreateLookupCommand()
//	ctx := &commands.AppContext{ConfigPath: "/etc/warninglists/warninglists.toml"}
//	if err := cmd.Init([]string{"-lists", "List of known IPv4 public DNS resolvers", "8.8.8.8"}, ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatal(err)
//	}
package commands
